package stream

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-audiofx/dsp/core"
)

// Device describes an audio output endpoint.
type Device struct {
	Name    string
	Default bool
}

// Devices returns the known output devices. The playback backend routes to
// the system default and does not enumerate hardware, so the list holds a
// single default descriptor.
func Devices() []Device {
	return []Device{{Name: "default", Default: true}}
}

// Player renders float64 samples on the default output device.
//
// The underlying audio context is a process-wide singleton; create one
// Player and reuse it rather than constructing several with different
// formats.
type Player struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// NewPlayer opens the output device at the given format.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stream: sample rate must be > 0: %d", sampleRate)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("stream: channel count must be > 0: %d", channels)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   100 * time.Millisecond,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("stream: failed to open output device: %w", err)
	}

	<-ready

	return &Player{
		ctx:        otoCtx,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// SampleRate returns the playback sample rate in Hz.
func (p *Player) SampleRate() int { return p.sampleRate }

// Channels returns the playback channel count.
func (p *Player) Channels() int { return p.channels }

// Play renders samples to completion, blocking until playback finishes or
// ctx is cancelled. Samples are clamped to [-1, 1].
func (p *Player) Play(ctx context.Context, samples []float64) error {
	buf := make([]byte, len(samples)*4)
	for i, v := range samples {
		bits := math.Float32bits(float32(core.Clamp(v, -1, 1)))
		binary.LittleEndian.PutUint32(buf[4*i:], bits)
	}

	player := p.ctx.NewPlayer(bytes.NewReader(buf))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("stream: playback failed: %w", err)
	}

	return nil
}
