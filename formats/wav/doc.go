// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so any chunk layout it understands
// is accepted and the file's real encoding (8/16/24/32-bit PCM or IEEE
// float) is reported through audio.Source.Encoding. The decoder does not
// reject anything on encoding grounds; that is audio.Validate's job.
//
// Encoding is 16-bit PCM only, for any number of interleaved channels.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//	fmt.Println(source.Encoding()) // pcm_s16, pcm_s24, float32, ...
//
// Readers that cannot seek are buffered in memory first.
//
// # Writing WAV Files
//
//	interleaved := []int16{100, 500, -200, 600} // L R L R
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, interleaved)
//
// # File Format
//
// WriteWAV16 emits the canonical 44-byte header:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): format tag 1, channels, sample rate, bit depth 16
//   - data chunk: little-endian interleaved samples
package wav
