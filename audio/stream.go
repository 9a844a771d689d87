// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sensfilt/utils"
)

// Stream is a fully decoded PCM16 recording held as one sample slice per
// channel. All channels have the same length.
type Stream struct {
	sampleRate int
	encoding   Encoding
	data       [][]int16
}

// NewStream builds a Stream from per-channel samples. It panics if the
// channels differ in length.
func NewStream(sampleRate int, encoding Encoding, channels ...[]int16) *Stream {
	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			panic(fmt.Sprintf("audio: channel %d has %d frames, channel 0 has %d", i, len(channels[i]), len(channels[0])))
		}
	}

	return &Stream{
		sampleRate: sampleRate,
		encoding:   encoding,
		data:       channels,
	}
}

func (s *Stream) SampleRate() int    { return s.sampleRate }
func (s *Stream) Encoding() Encoding { return s.encoding }
func (s *Stream) Channels() int      { return len(s.data) }

// Frames is the number of samples per channel.
func (s *Stream) Frames() int {
	if len(s.data) == 0 {
		return 0
	}

	return len(s.data[0])
}

// Channel returns the samples of channel ch. The slice is owned by the
// stream and must not be modified.
func (s *Stream) Channel(ch int) []int16 { return s.data[ch] }

// Collect drains src into a Stream, converting its float32 samples back to
// 16-bit PCM and splitting them per channel. It is meant for sources that
// already passed Validate.
func Collect(src Source) (*Stream, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, &LayoutError{Channels: channels}
	}

	// Read whole frames at a time
	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels
	buf := make([]float32, bufSize)

	data := make([][]int16, channels)
	pending := 0

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			ch := (pending + i) % channels
			data[ch] = append(data[ch], utils.Float32ToInt16(buf[i]))
		}
		pending = (pending + n) % channels

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// decoders signal exhaustion either way
			break
		}
	}

	if pending != 0 {
		return nil, ErrPartialFrame
	}

	for ch := range data {
		if data[ch] == nil {
			data[ch] = []int16{}
		}
	}

	return &Stream{
		sampleRate: src.SampleRate(),
		encoding:   src.Encoding(),
		data:       data,
	}, nil
}
