// Command audiofx decodes an audio file, runs it through a chain of
// effects and writes or plays the result.
//
// Usage:
//
//	audiofx -in input.wav -out processed.wav -effects delay,reverb
//
// Examples:
//
//	audiofx -in voice.wav -out clean.wav -effects dereverb,gate -normalize
//	audiofx -in song.mp3 -out wide.wav -effects compressor -eq 120:3,3000:-2:2
//	audiofx -in tone.ogg -play -effects tremolo
//	audiofx -list
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audiofx/audiofile"
	"github.com/cwbudde/algo-audiofx/dsp/dereverb"
	"github.com/cwbudde/algo-audiofx/dsp/effects"
	"github.com/cwbudde/algo-audiofx/dsp/effects/dynamics"
	"github.com/cwbudde/algo-audiofx/dsp/effects/modulation"
	"github.com/cwbudde/algo-audiofx/dsp/filter/eq"
	dspsignal "github.com/cwbudde/algo-audiofx/dsp/signal"
	"github.com/cwbudde/algo-audiofx/stream"
	stats "github.com/cwbudde/algo-audiofx/stats/time"
)

// sampleProcessor is the per-sample surface every chain stage exposes.
type sampleProcessor interface {
	ProcessSample(input float64) float64
}

type options struct {
	in        string
	out       string
	play      bool
	bits      int
	blockSize int
	effects   string
	eqSpec    string
	normalize bool
	removeDC  bool
	showStats bool

	delayMs        float64
	delayFeedback  float64
	roomSize       float64
	damping        float64
	distGain       float64
	distThreshold  float64
	tremRate       float64
	tremDepth      float64
	flangeDepthMs  float64
	flangeRate     float64
	compThreshold  float64
	compRatio      float64
	gateThreshold  float64
	dereverbCutoff float64
}

var effectNames = []string{
	"delay",
	"reverb",
	"distortion",
	"tremolo",
	"flanger",
	"compressor",
	"gate",
	"dereverb",
	"eq",
}

func main() {
	var opts options

	flag.StringVar(&opts.in, "in", "", "input file (.wav, .mp3 or .ogg)")
	flag.StringVar(&opts.out, "out", "", "output WAV file")
	flag.BoolVar(&opts.play, "play", false, "play the result on the default output device")
	flag.IntVar(&opts.bits, "bits", 16, "output WAV bit depth (16, 24 or 32)")
	flag.IntVar(&opts.blockSize, "block", 4096, "processing block size in samples")
	flag.StringVar(&opts.effects, "effects", "", "comma-separated effect chain (see -list)")
	flag.StringVar(&opts.eqSpec, "eq", "", "equalizer bands as freq:gain[:q], comma-separated")
	flag.BoolVar(&opts.normalize, "normalize", false, "normalize peak level after processing")
	flag.BoolVar(&opts.removeDC, "remove-dc", false, "remove DC offset after processing")
	flag.BoolVar(&opts.showStats, "stats", false, "print signal statistics before and after")

	flag.Float64Var(&opts.delayMs, "delay-ms", 400, "delay time in milliseconds")
	flag.Float64Var(&opts.delayFeedback, "delay-feedback", 0.4, "delay feedback in [0, 0.99]")
	flag.Float64Var(&opts.roomSize, "room-size", 0.3, "reverb room size in [0, 1]")
	flag.Float64Var(&opts.damping, "damping", 0.5, "reverb damping in [0, 1]")
	flag.Float64Var(&opts.distGain, "dist-gain", 2, "distortion pre-gain")
	flag.Float64Var(&opts.distThreshold, "dist-threshold", 0.6, "distortion clip threshold in (0, 1)")
	flag.Float64Var(&opts.tremRate, "trem-rate", 4, "tremolo rate in Hz")
	flag.Float64Var(&opts.tremDepth, "trem-depth", 0.6, "tremolo depth in [0, 1]")
	flag.Float64Var(&opts.flangeDepthMs, "flange-depth-ms", 2, "flanger sweep depth in milliseconds")
	flag.Float64Var(&opts.flangeRate, "flange-rate", 0.25, "flanger LFO rate in Hz")
	flag.Float64Var(&opts.compThreshold, "comp-threshold", 0.5, "compressor threshold")
	flag.Float64Var(&opts.compRatio, "comp-ratio", 4, "compressor ratio")
	flag.Float64Var(&opts.gateThreshold, "gate-threshold", 0.05, "gate threshold")
	flag.Float64Var(&opts.dereverbCutoff, "dereverb-cutoff", 100, "dereverb high-pass cutoff in Hz")

	list := flag.Bool("list", false, "list available effect names")
	verbose := flag.Bool("v", false, "verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: audiofx [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Decodes an audio file, processes it and writes or plays the result.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  audiofx -in voice.wav -out clean.wav -effects dereverb,gate\n")
		fmt.Fprintf(os.Stderr, "  audiofx -in song.mp3 -play -effects tremolo\n")
	}
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *list {
		printList()
		return
	}

	if opts.in == "" {
		fmt.Fprintf(os.Stderr, "error: -in is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if opts.out == "" && !opts.play {
		fmt.Fprintf(os.Stderr, "error: nothing to do, pass -out and/or -play\n")
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		logrus.WithError(err).Error("processing failed")
		os.Exit(1)
	}
}

func printList() {
	names := append([]string(nil), effectNames...)
	sort.Strings(names)

	for _, n := range names {
		fmt.Println(n)
	}
}

func run(opts *options) error {
	pcm, err := audiofile.Decode(opts.in)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path":        opts.in,
		"sample_rate": pcm.SampleRate,
		"channels":    pcm.Channels,
		"frames":      pcm.Frames(),
	}).Info("decoded input")

	if opts.showStats {
		printStats("input", pcm.Samples)
	}

	channels, err := audiofile.Deinterleave(pcm.Samples, pcm.Channels)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	names := parseEffectNames(opts.effects)

	for c, ch := range channels {
		// Stateful stages must not be shared, so each channel gets its
		// own chain instance.
		chain, err := buildChain(names, float64(pcm.SampleRate), opts)
		if err != nil {
			return err
		}

		processed := make([]float64, 0, len(ch))

		src, err := stream.NewSliceSource(float64(pcm.SampleRate), ch)
		if err != nil {
			return err
		}

		err = stream.Blocks(ctx, src, opts.blockSize, func(block []float64) error {
			for _, stage := range chain {
				for i := range block {
					block[i] = stage.ProcessSample(block[i])
				}
			}

			processed = append(processed, block...)

			return nil
		})
		if err != nil {
			return err
		}

		channels[c] = processed

		logrus.WithFields(logrus.Fields{
			"channel": c,
			"stages":  len(chain),
		}).Debug("processed channel")
	}

	for _, ch := range channels {
		if opts.removeDC {
			dspsignal.RemoveDCOffset(ch)
		}

		if opts.normalize {
			dspsignal.Normalize(ch)
		}
	}

	pcm.Samples, err = audiofile.Interleave(channels)
	if err != nil {
		return err
	}

	if opts.showStats {
		printStats("output", pcm.Samples)
	}

	if opts.out != "" {
		if err := audiofile.EncodeWAV(opts.out, pcm, opts.bits); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"path": opts.out,
			"bits": opts.bits,
		}).Info("wrote output")
	}

	if opts.play {
		player, err := stream.NewPlayer(pcm.SampleRate, pcm.Channels)
		if err != nil {
			return err
		}

		logrus.WithField("frames", pcm.Frames()).Info("playing")

		if err := player.Play(ctx, pcm.Samples); err != nil {
			return err
		}
	}

	return nil
}

func parseEffectNames(spec string) []string {
	var names []string

	for _, part := range strings.Split(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			names = append(names, part)
		}
	}

	return names
}

func buildChain(names []string, sampleRate float64, opts *options) ([]sampleProcessor, error) {
	var chain []sampleProcessor

	for _, name := range names {
		stage, err := buildStage(name, sampleRate, opts)
		if err != nil {
			return nil, err
		}

		chain = append(chain, stage)
	}

	return chain, nil
}

func buildStage(name string, sampleRate float64, opts *options) (sampleProcessor, error) {
	switch name {
	case "delay":
		return effects.NewDelay(sampleRate,
			effects.WithDelayTimeMs(opts.delayMs),
			effects.WithDelayFeedback(opts.delayFeedback),
		)
	case "reverb":
		return effects.NewReverb(sampleRate,
			effects.WithReverbRoomSize(opts.roomSize),
			effects.WithReverbDamping(opts.damping),
		)
	case "distortion":
		return effects.NewDistortion(
			effects.WithDistortionGain(opts.distGain),
			effects.WithDistortionThreshold(opts.distThreshold),
		)
	case "tremolo":
		return modulation.NewTremolo(sampleRate,
			modulation.WithTremoloRateHz(opts.tremRate),
			modulation.WithTremoloDepth(opts.tremDepth),
		)
	case "flanger":
		return modulation.NewFlanger(sampleRate,
			modulation.WithFlangerDepthMs(opts.flangeDepthMs),
			modulation.WithFlangerRateHz(opts.flangeRate),
		)
	case "compressor":
		return dynamics.NewCompressor(sampleRate,
			dynamics.WithCompressorThreshold(opts.compThreshold),
			dynamics.WithCompressorRatio(opts.compRatio),
		)
	case "gate":
		return dynamics.NewGate(sampleRate,
			dynamics.WithGateThreshold(opts.gateThreshold),
		)
	case "dereverb":
		return dereverb.New(sampleRate,
			dereverb.WithCutoffHz(opts.dereverbCutoff),
		)
	case "eq":
		bands, err := parseEQBands(opts.eqSpec)
		if err != nil {
			return nil, err
		}

		return eq.New(sampleRate, bands)
	default:
		return nil, fmt.Errorf("unknown effect %q (use -list to see available)", name)
	}
}

func parseEQBands(spec string) ([]eq.Band, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("eq effect requires -eq bands, e.g. -eq 1000:6:1.4")
	}

	var bands []eq.Band

	for _, part := range strings.Split(spec, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("invalid eq band %q, want freq:gain[:q]", part)
		}

		freq, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid eq frequency %q: %w", fields[0], err)
		}

		gain, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid eq gain %q: %w", fields[1], err)
		}

		q := 1.0

		if len(fields) == 3 {
			q, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid eq Q %q: %w", fields[2], err)
			}
		}

		bands = append(bands, eq.Band{FrequencyHz: freq, GainDB: gain, Q: q})
	}

	return bands, nil
}

func printStats(label string, samples []float64) {
	s := stats.Calculate(samples)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tRMS\t%.4f (%.1f dB)\n", label, s.RMS, s.RMS_dB)
	fmt.Fprintf(tw, "\tPeak\t%.4f (%.1f dB)\n", s.Peak, s.Peak_dB)
	fmt.Fprintf(tw, "\tDC\t%.6f\n", s.DC)
	fmt.Fprintf(tw, "\tZero crossings\t%d\n", s.ZeroCrossings)
	tw.Flush()
}
