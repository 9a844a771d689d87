// SPDX-License-Identifier: EPL-2.0

package sensfilt

import "errors"

var (
	// ErrAudioDecode wraps every failure to open, parse or read the input
	// recording.
	ErrAudioDecode = errors.New("audio decode failure")

	// ErrAudioEncode wraps every failure to write the filtered recording.
	ErrAudioEncode = errors.New("audio encode failure")

	// ErrUnknownFormat means no decoder is registered for the input's
	// file extension. It is always reported together with ErrAudioDecode.
	ErrUnknownFormat = errors.New("no decoder for file extension")

	// ErrOutputIsInput means the derived output name points at the input
	// recording. It is always reported together with ErrAudioEncode.
	ErrOutputIsInput = errors.New("output path is the input file")
)
