package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep resampler quality used for clips recorded at
// other rates.
const resampleQuality = 4

// Sound is a decoded clip held in memory at SampleRate. Playing it again
// while it is still playing restarts it from the beginning.
type Sound struct {
	buf *beep.Buffer
	// ctrl is the current playback, guarded by the speaker lock.
	ctrl *beep.Ctrl
}

// LoadSound decodes a WAV stream into memory, resampling to SampleRate
// when needed.
func LoadSound(r io.Reader) (*Sound, error) {
	stream, format, err := wav.Decode(io.NopCloser(r))
	if err != nil {
		return nil, fmt.Errorf("load sound: %w", err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: precision})
	if format.SampleRate == SampleRate {
		buf.Append(stream)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream))
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("load sound: %w", err)
	}
	return &Sound{buf: buf}, nil
}

// Len returns the clip length in samples.
func (s *Sound) Len() int {
	return s.buf.Len()
}

// Duration returns the clip length.
func (s *Sound) Duration() time.Duration {
	return SampleRate.D(s.buf.Len())
}

// restart stops the current playback, if any, and returns a fresh one.
// Callers hold the speaker lock.
func (s *Sound) restart(loop bool) *beep.Ctrl {
	if s.ctrl != nil {
		s.ctrl.Streamer = nil
	}
	var st beep.Streamer = s.buf.Streamer(0, s.buf.Len())
	if loop {
		st = beep.Loop(-1, s.buf.Streamer(0, s.buf.Len()))
	}
	s.ctrl = &beep.Ctrl{Streamer: st}
	return s.ctrl
}

// stop ends playback. Callers hold the speaker lock.
func (s *Sound) stop() {
	if s.ctrl != nil {
		s.ctrl.Streamer = nil
		s.ctrl = nil
	}
}
