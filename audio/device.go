// Package audio plays sample buffers and WAV clips through the system
// speaker using beep.
//
// Opening the device is best effort: when no output is available the
// failure is logged and every play call becomes a no-op, so a program runs
// the same with or without sound.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// bufferDuration is the speaker buffer length.
const bufferDuration = 100 * time.Millisecond

// Device owns the speaker and a mixer that every playback goes through.
// Only one Device should be open at a time since the speaker is global.
type Device struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	open   bool
	logger *slog.Logger
}

// Open initializes the speaker. On failure it logs a warning and returns a
// silent device.
func Open(logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Device{mixer: &beep.Mixer{}, logger: logger}
	if err := speaker.Init(SampleRate, SampleRate.N(bufferDuration)); err != nil {
		logger.Warn("Audio unavailable, continuing without sound", "error", err)
		return d
	}
	speaker.Play(d.mixer)
	d.open = true
	return d
}

// Available reports whether sound actually reaches the speaker.
func (d *Device) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// add queues s on the mixer, reporting false on a silent device.
func (d *Device) add(fn func() beep.Streamer) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return false
	}
	speaker.Lock()
	d.mixer.Add(fn())
	speaker.Unlock()
	return true
}

// Play mixes in an arbitrary streamer.
func (d *Device) Play(s beep.Streamer) {
	d.add(func() beep.Streamer { return s })
}

// PlaySamples plays mono samples in [-1, 1]; larger values are clipped.
// Non-finite samples are rejected before anything is played.
func (d *Device) PlaySamples(samples []float64) error {
	if err := Validate(samples); err != nil {
		return fmt.Errorf("play samples: %w", err)
	}
	copied := append([]float64(nil), samples...)
	d.add(func() beep.Streamer { return &samplesStreamer{samples: copied} })
	return nil
}

// PlaySound plays s from the start, cutting off any playback of s that is
// still running.
func (d *Device) PlaySound(s *Sound) {
	d.add(func() beep.Streamer { return s.restart(false) })
}

// LoopSound plays s repeatedly until StopSound.
func (d *Device) LoopSound(s *Sound) {
	d.add(func() beep.Streamer { return s.restart(true) })
}

// StopSound ends playback of s.
func (d *Device) StopSound(s *Sound) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	speaker.Lock()
	s.stop()
	speaker.Unlock()
}

// Close stops all playback and releases the speaker. The device is silent
// afterwards.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	speaker.Lock()
	d.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	d.open = false
}
