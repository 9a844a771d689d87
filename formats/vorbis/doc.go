// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis decodes to float samples only, so every source reports
// Encoding() == audio.EncodingFloat32. The filter pipeline rejects such
// sources with audio.ErrUnsupportedEncoding; the decoder is registered so
// that .ogg input produces that diagnostic instead of an unknown format
// error.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	_, err = audio.Validate(source, "audio.ogg") // ErrUnsupportedEncoding
package vorbis
