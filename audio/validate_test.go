// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/sensfilt/internal/audiotest"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		encoding   Encoding
		wantLayout Layout
		wantErr    error
	}{
		{"mono pcm16", 1, EncodingPCM16, LayoutMono, nil},
		{"stereo pcm16", 2, EncodingPCM16, LayoutStereo, nil},
		{"8-bit", 1, EncodingPCMU8, 0, ErrUnsupportedEncoding},
		{"signed 8-bit", 1, EncodingPCMS8, 0, ErrUnsupportedEncoding},
		{"24-bit", 2, EncodingPCM24, 0, ErrUnsupportedEncoding},
		{"32-bit int", 2, EncodingPCM32, 0, ErrUnsupportedEncoding},
		{"32-bit float", 2, EncodingFloat32, 0, ErrUnsupportedEncoding},
		{"64-bit float", 1, EncodingFloat64, 0, ErrUnsupportedEncoding},
		{"unknown encoding", 1, EncodingUnknown, 0, ErrUnsupportedEncoding},
		{"no channels", 0, EncodingPCM16, 0, ErrUnsupportedChannelLayout},
		{"three channels", 3, EncodingPCM16, 0, ErrUnsupportedChannelLayout},
		{"six channels", 6, EncodingPCM16, 0, ErrUnsupportedChannelLayout},
		{"encoding checked first", 6, EncodingPCM24, 0, ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(8000, tt.channels, tt.encoding, 4)

			got, err := Validate(src, "input.wav")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.wantLayout {
				t.Errorf("Validate() layout = %v, want %v", got, tt.wantLayout)
			}
		})
	}
}

func TestValidate_ErrorDetails(t *testing.T) {
	t.Parallel()

	_, err := Validate(audiotest.NewSilentSource(8000, 2, EncodingFloat32, 4), "hot.wav")

	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("Validate() error = %v, want *EncodingError", err)
	}
	if encErr.File != "hot.wav" || encErr.Encoding != EncodingFloat32 {
		t.Errorf("EncodingError = %+v, want File=hot.wav Encoding=float32", encErr)
	}

	_, err = Validate(NewStream(8000, EncodingPCM16, []int16{1}, []int16{2}, []int16{3}), "tri.wav")

	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("Validate() error = %v, want *LayoutError", err)
	}
	if layoutErr.File != "tri.wav" || layoutErr.Channels != 3 {
		t.Errorf("LayoutError = %+v, want File=tri.wav Channels=3", layoutErr)
	}
}

func TestValidate_DoesNotConsumeSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewPCM16Source(8000, EncodingPCM16, []int16{1, 2, 3})
	if _, err := Validate(src, "x.wav"); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	stream, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if stream.Frames() != 3 {
		t.Errorf("Frames() = %d after Validate, want 3", stream.Frames())
	}
}

func TestLayout_String(t *testing.T) {
	t.Parallel()

	if LayoutMono.String() != "mono" {
		t.Errorf("LayoutMono.String() = %q", LayoutMono.String())
	}
	if LayoutStereo.String() != "stereo" {
		t.Errorf("LayoutStereo.String() = %q", LayoutStereo.String())
	}
	if Layout(0).String() != "invalid" {
		t.Errorf("Layout(0).String() = %q", Layout(0).String())
	}
}
