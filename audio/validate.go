// SPDX-License-Identifier: EPL-2.0

package audio

// Layout is the channel shape of a validated input. It is resolved once by
// Validate so later stages never re-check the channel count.
type Layout int

const (
	LayoutMono   Layout = 1
	LayoutStereo Layout = 2
)

func (l Layout) String() string {
	switch l {
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	}

	return "invalid"
}

// Descriptor is the part of a decoded stream the validator inspects.
// Source and *Stream both satisfy it.
type Descriptor interface {
	Encoding() Encoding
	Channels() int
}

// Validate accepts 16-bit signed PCM with one or two channels and returns
// the resolved layout. file only labels the errors.
//
// Encoding is checked before the channel count, so a 24-bit 6-channel file
// reports an *EncodingError.
func Validate(d Descriptor, file string) (Layout, error) {
	if enc := d.Encoding(); enc != EncodingPCM16 {
		return 0, &EncodingError{File: file, Encoding: enc}
	}

	switch ch := d.Channels(); ch {
	case 1:
		return LayoutMono, nil
	case 2:
		return LayoutStereo, nil
	default:
		return 0, &LayoutError{File: file, Channels: ch}
	}
}
