// SPDX-License-Identifier: EPL-2.0

// Package sensfilt applies a measured sensor correction filter to a
// recording by convolving each channel with its own impulse response.
//
// # Pipeline
//
// FilterFile runs every stage for one input file:
//
//  1. decode the recording with the decoder registered for its extension
//  2. validate it: 16-bit signed PCM, one or two channels
//  3. normalize to two channels, duplicating mono input
//  4. convolve left and right with their impulse responses, re-quantize to
//     16 bits and cut the convolution tail back to the input length
//  5. write a 16-bit stereo WAV named by OutputPath
//
// Nothing is written unless every stage succeeds.
//
//	res, err := sensfilt.FilterFile("take1.wav", "filters", "left.bin", "right.bin")
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedEncoding), impulse.ErrRead, ...
//	}
//	fmt.Println(res.Output) // take1_sensFilt.wav
//
// Filter runs the validation, normalization and convolution stages on an
// already decoded audio.Stream, with no file I/O.
//
// # Impulse responses
//
// Impulse-response files are flat sequences of float64 values with no
// header. See package impulse.
//
// # Re-quantization
//
// Filtered samples are truncated toward zero and wrap around on overflow,
// like a plain integer conversion. WithOverflow(convolve.OverflowSaturate)
// clamps to the int16 range instead.
//
// # Formats
//
// DefaultRegistry decodes WAV, AIFF, MP3 and Ogg Vorbis. Only sources that
// decode to 16-bit PCM pass validation; Vorbis never does.
package sensfilt
