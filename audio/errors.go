// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrPartialFrame             = errors.New("stream ended inside a frame")
	ErrUnsupportedEncoding      = errors.New("unsupported sample encoding")
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
)

// EncodingError reports an input whose sample encoding is not 16-bit signed
// integer PCM. It matches ErrUnsupportedEncoding with errors.Is.
type EncodingError struct {
	File     string
	Encoding Encoding
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%q is %s, only %s input is supported", e.File, e.Encoding, EncodingPCM16)
}

func (e *EncodingError) Unwrap() error { return ErrUnsupportedEncoding }

// LayoutError reports an input that is neither mono nor stereo. It matches
// ErrUnsupportedChannelLayout with errors.Is.
type LayoutError struct {
	File     string
	Channels int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%q has %d channels, only 1 or 2 channel input is supported", e.File, e.Channels)
}

func (e *LayoutError) Unwrap() error { return ErrUnsupportedChannelLayout }
