package audiofile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/cwbudde/algo-audiofx/dsp/core"
)

// ErrUnsupportedFormat reports a file whose encoding or bit depth cannot
// be decoded.
var ErrUnsupportedFormat = errors.New("audiofile: unsupported format")

// PCM holds decoded audio as float64 samples in the nominal [-1, 1] range.
// Multi-channel audio is interleaved.
type PCM struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames.
func (p *PCM) Frames() int {
	if p.Channels == 0 {
		return 0
	}

	return len(p.Samples) / p.Channels
}

// Mono mixes all channels down to a single channel and returns a new slice.
func (p *PCM) Mono() []float64 {
	if p.Channels <= 1 {
		out := make([]float64, len(p.Samples))
		copy(out, p.Samples)

		return out
	}

	frames := p.Frames()
	out := make([]float64, frames)

	for i := range frames {
		var sum float64
		for c := range p.Channels {
			sum += p.Samples[i*p.Channels+c]
		}

		out[i] = sum / float64(p.Channels)
	}

	return out
}

// Decode reads an audio file and returns its samples. The decoder is
// selected by file extension.
func Decode(path string) (*PCM, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAV(path)
	case ".mp3":
		return DecodeMP3(path)
	case ".ogg":
		return DecodeOgg(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeWAV reads a WAV file with 16, 24 or 32-bit integer PCM or 32-bit
// IEEE float samples.
func DecodeWAV(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()

	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a valid WAV file", ErrUnsupportedFormat, path)
	}

	const (
		formatPCM       = 1
		formatIEEEFloat = 3
	)

	format := int(dec.WavAudioFormat)
	bits := int(dec.BitDepth)

	switch {
	case format == formatPCM && (bits == 16 || bits == 24 || bits == 32):
	case format == formatIEEEFloat && bits == 32:
	default:
		return nil, fmt.Errorf("%w: WAV format %d with %d-bit samples", ErrUnsupportedFormat, format, bits)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}

	samples := make([]float64, len(buf.Data))

	if format == formatIEEEFloat {
		for i, v := range buf.Data {
			samples[i] = float64(math.Float32frombits(uint32(int32(v))))
		}
	} else {
		scale := 1 / float64(int64(1)<<(bits-1))
		for i, v := range buf.Data {
			samples[i] = float64(v) * scale
		}
	}

	return &PCM{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}

// DecodeMP3 reads an MP3 file. The decoder always yields 16-bit stereo PCM.
func DecodeMP3(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = float64(v) / 32768.0
	}

	return &PCM{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}

// DecodeOgg reads an Ogg Vorbis file.
func DecodeOgg(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	var samples []float64

	chunk := make([]float32, 4096)

	for {
		n, err := dec.Read(chunk)
		for _, v := range chunk[:n] {
			samples = append(samples, float64(v))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("audiofile: decode %s: %w", path, err)
		}
	}

	return &PCM{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
	}, nil
}

// EncodeWAV writes pcm to path as integer PCM of the given bit depth
// (16, 24 or 32). Samples are clamped to [-1, 1] before quantization.
func EncodeWAV(path string, pcm *PCM, bitDepth int) error {
	if pcm == nil || pcm.Channels <= 0 || pcm.SampleRate <= 0 {
		return fmt.Errorf("audiofile: invalid PCM descriptor")
	}

	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("%w: %d-bit WAV output", ErrUnsupportedFormat, bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, pcm.SampleRate, bitDepth, pcm.Channels, 1)

	fullScale := float64(int64(1)<<(bitDepth-1)) - 1

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: pcm.Channels,
			SampleRate:  pcm.SampleRate,
		},
		Data:           make([]int, len(pcm.Samples)),
		SourceBitDepth: bitDepth,
	}

	for i, v := range pcm.Samples {
		buf.Data[i] = int(math.Round(core.Clamp(v, -1, 1) * fullScale))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: finalize %s: %w", path, err)
	}

	return nil
}

// Deinterleave splits interleaved samples into per-channel slices.
func Deinterleave(samples []float64, channels int) ([][]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("audiofile: channel count must be > 0: %d", channels)
	}

	frames := len(samples) / channels
	out := make([][]float64, channels)

	for c := range out {
		out[c] = make([]float64, frames)
		for i := range frames {
			out[c][i] = samples[i*channels+c]
		}
	}

	return out, nil
}

// Interleave merges per-channel slices into one interleaved buffer. All
// channels must have the same length.
func Interleave(channels [][]float64) ([]float64, error) {
	if len(channels) == 0 {
		return nil, nil
	}

	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("audiofile: channel %d length %d, want %d", c, len(ch), frames)
		}
	}

	out := make([]float64, frames*len(channels))

	for c, ch := range channels {
		for i, v := range ch {
			out[i*len(channels)+c] = v
		}
	}

	return out, nil
}
