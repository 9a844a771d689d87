// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio model and the first two stages of
// the filtering pipeline.
//
// This package contains:
//   - Source interface for decoded audio input
//   - Registry for picking a decoder by format or file extension
//   - Encoding, the sample encoding a container declares
//   - Validate, the format validator
//   - Collect, which drains a Source into a per-channel PCM16 Stream
//   - Normalize, which turns a validated Stream into a left/right ChannelPair
//
// # Source Interface
//
// The Source interface is the boundary between format decoders and the
// pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Encoding() Encoding
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are delivered as interleaved float32 values in [-1.0, 1.0]. For
// 16-bit input the scaling is exact, so Collect recovers the original
// integers bit for bit.
//
// # Validation
//
// Only 16-bit signed PCM with one or two channels is accepted:
//
//	layout, err := audio.Validate(src, "take1.wav")
//	if errors.Is(err, audio.ErrUnsupportedEncoding) {
//	    // err is an *audio.EncodingError with the detected encoding
//	}
//
// The encoding is checked first, then the channel count. Validate only looks
// at the descriptor; it never reads samples.
//
// # Channel Normalization
//
// Normalize always returns two buffers of the stream's frame count. Mono
// input is duplicated (and the duplication is logged), stereo input is copied
// through. The buffers never alias each other or the stream, so each side can
// be filtered independently.
//
//	stream, _ := audio.Collect(src)
//	pair := audio.Normalize(stream, layout, "take1.wav", logger)
//
// # Error Handling
//
// Rejections are typed errors that also match sentinels:
//
//	var encErr *audio.EncodingError   // errors.Is(err, audio.ErrUnsupportedEncoding)
//	var layErr *audio.LayoutError     // errors.Is(err, audio.ErrUnsupportedChannelLayout)
//
// Sources return io.EOF when no more data is available.
package audio
