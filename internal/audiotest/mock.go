// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// Instantiated with audio.Encoding it implements audio.Source; the type
// parameter keeps this package free of an audio import so the audio
// package's own tests can use it.
type MockSource[E ~int] struct {
	sampleRate   int
	channels     int
	encoding     E
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	readErr      error
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource[E ~int](sampleRate, channels int, encoding E, totalSamples int, waveform func(sample int, channel int) float32) *MockSource[E] {
	return &MockSource[E]{
		sampleRate:   sampleRate,
		channels:     channels,
		encoding:     encoding,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource[E ~int](sampleRate, channels int, encoding E, totalSamples int) *MockSource[E] {
	return NewMockSource(sampleRate, channels, encoding, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource[E ~int](sampleRate, channels int, encoding E, totalSamples int, frequency float64) *MockSource[E] {
	return NewMockSource(sampleRate, channels, encoding, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewPCM16Source replays fixed 16-bit samples, one slice per channel. All
// slices must have the same length.
func NewPCM16Source[E ~int](sampleRate int, encoding E, channels ...[]int16) *MockSource[E] {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	return NewMockSource(sampleRate, len(channels), encoding, frames, func(sample int, channel int) float32 {
		return float32(channels[channel][sample]) / 32768.0
	})
}

// FailAfter makes ReadSamples return err once all samples have been produced
// instead of io.EOF.
func (m *MockSource[E]) FailAfter(err error) *MockSource[E] {
	m.readErr = err
	return m
}

func (m *MockSource[E]) SampleRate() int { return m.sampleRate }
func (m *MockSource[E]) Channels() int   { return m.channels }
func (m *MockSource[E]) Encoding() E     { return m.encoding }
func (m *MockSource[E]) BufSize() int    { return 4096 }
func (m *MockSource[E]) Close() error    { return nil }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource[E]) Reset() {
	m.generated = 0
}

func (m *MockSource[E]) ReadSamples(dst []float32) (int, error) {
	if m.channels <= 0 {
		return 0, errors.New("audiotest: source has no channels")
	}

	if m.generated >= m.totalSamples {
		return 0, m.endErr()
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, m.endErr()
	}

	return samplesWritten, nil
}

func (m *MockSource[E]) endErr() error {
	if m.readErr != nil {
		return m.readErr
	}

	return io.EOF
}
