// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
	"slices"
)

// ChannelPair holds the left and right buffers handed to the convolution
// stage. Both always have the stream's frame count and never share memory
// with each other or with the stream.
type ChannelPair struct {
	Left  []int16
	Right []int16
}

// Frames is the number of samples per side.
func (p ChannelPair) Frames() int { return len(p.Left) }

// Normalize turns a validated stream into exactly two independent channel
// buffers. Mono input is duplicated into both sides and the duplication is
// logged at info level; stereo input is copied through unchanged.
//
// layout must be the value Validate returned for s. A mismatch is a
// programming error and panics.
func Normalize(s *Stream, layout Layout, file string, logger *slog.Logger) ChannelPair {
	if logger == nil {
		logger = slog.Default()
	}

	if int(layout) != s.Channels() {
		panic(fmt.Sprintf("audio: normalize %s layout with %d channels", layout, s.Channels()))
	}

	switch layout {
	case LayoutMono:
		logger.Info("single-channel input, left channel copied before filtering",
			"file", file,
			"frames", s.Frames(),
		)

		return ChannelPair{
			Left:  slices.Clone(s.data[0]),
			Right: slices.Clone(s.data[0]),
		}
	default: // LayoutStereo
		return ChannelPair{
			Left:  slices.Clone(s.data[0]),
			Right: slices.Clone(s.data[1]),
		}
	}
}

// Interleave merges the pair into frame-major order: L0 R0 L1 R1 ...
func (p ChannelPair) Interleave() []int16 {
	out := make([]int16, 0, len(p.Left)*2)
	for i := range p.Left {
		out = append(out, p.Left[i], p.Right[i])
	}

	return out
}
