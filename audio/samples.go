package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate of every sample slice this package produces or
// accepts.
const SampleRate = beep.SampleRate(44100)

// precision is 16-bit PCM.
const precision = 2

var (
	// ErrNonFinite is returned for samples that are NaN or infinite.
	ErrNonFinite = errors.New("audio: sample is not finite")
	// ErrFormat is returned when a WAV stream is not 16-bit at SampleRate.
	ErrFormat = errors.New("audio: unsupported format")
)

// Validate returns ErrNonFinite, with the offending index, if any sample is
// NaN or infinite. Out-of-range finite samples are fine; they are clipped
// on output.
func Validate(samples []float64) error {
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("sample %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// Note returns a sine wave of hz at the given amplitude lasting duration
// seconds. The slice holds SampleRate*duration+1 samples so that both ends
// of the interval are included.
func Note(hz, duration, amplitude float64) []float64 {
	n := int(float64(SampleRate) * duration)
	if n < 0 {
		n = 0
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(i)*hz/float64(SampleRate))
	}
	return out
}

// clip limits s to [-1, 1].
func clip(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}

// samplesStreamer plays a mono sample slice on both channels.
type samplesStreamer struct {
	samples []float64
	pos     int
}

// Stream implements beep.Streamer.
func (s *samplesStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := clip(s.samples[s.pos])
		buf[n] = [2]float64{v, v}
		n++
		s.pos++
	}
	return n, true
}

// Err implements beep.Streamer.
func (s *samplesStreamer) Err() error { return nil }

// ReadSamples decodes a 16-bit WAV stream at SampleRate into mono samples
// in [-1, 1]. Stereo input is mixed down by averaging the channels.
func ReadSamples(r io.Reader) ([]float64, error) {
	stream, format, err := wav.Decode(io.NopCloser(r))
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	defer stream.Close()

	if format.SampleRate != SampleRate || format.Precision != precision {
		return nil, fmt.Errorf("read samples: %d Hz, %d-bit: %w",
			format.SampleRate, format.Precision*8, ErrFormat)
	}

	out := make([]float64, 0, stream.Len())
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for _, s := range buf[:n] {
			out = append(out, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	return out, nil
}

// WriteSamples encodes samples as a mono 16-bit WAV at SampleRate. Samples
// outside [-1, 1] are clipped.
func WriteSamples(w io.WriteSeeker, samples []float64) error {
	if err := Validate(samples); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: precision}
	if err := wav.Encode(w, &samplesStreamer{samples: samples}, format); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}
