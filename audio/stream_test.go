// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/sensfilt/internal/audiotest"
)

func TestCollect_Stereo(t *testing.T) {
	t.Parallel()

	left := []int16{1000, 2000, 3000, -32768, 32767}
	right := []int16{500, 600, 700, 0, -1}
	src := audiotest.NewPCM16Source(48000, EncodingPCM16, left, right)

	stream, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if stream.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", stream.SampleRate())
	}
	if stream.Encoding() != EncodingPCM16 {
		t.Errorf("Encoding() = %v, want pcm_s16", stream.Encoding())
	}
	if stream.Channels() != 2 || stream.Frames() != 5 {
		t.Fatalf("got %d channels x %d frames, want 2 x 5", stream.Channels(), stream.Frames())
	}
	if !slices.Equal(stream.Channel(0), left) {
		t.Errorf("Channel(0) = %v, want %v", stream.Channel(0), left)
	}
	if !slices.Equal(stream.Channel(1), right) {
		t.Errorf("Channel(1) = %v, want %v", stream.Channel(1), right)
	}
}

func TestCollect_LongerThanBuffer(t *testing.T) {
	t.Parallel()

	frames := 10000
	src := audiotest.NewMockSource(8000, 1, EncodingPCM16, frames, func(sample, channel int) float32 {
		return float32(sample%1000) / 32768.0
	})

	stream, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if stream.Frames() != frames {
		t.Fatalf("Frames() = %d, want %d", stream.Frames(), frames)
	}
	for i, v := range stream.Channel(0) {
		if int(v) != i%1000 {
			t.Fatalf("sample %d = %d, want %d", i, v, i%1000)
		}
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	stream, err := Collect(audiotest.NewSilentSource(8000, 2, EncodingPCM16, 0))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if stream.Channels() != 2 || stream.Frames() != 0 {
		t.Errorf("got %d channels x %d frames, want 2 x 0", stream.Channels(), stream.Frames())
	}
}

func TestCollect_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	src := audiotest.NewSilentSource(8000, 1, EncodingPCM16, 3).FailAfter(boom)

	if _, err := Collect(src); !errors.Is(err, boom) {
		t.Errorf("Collect() error = %v, want %v", err, boom)
	}
}

func TestNewStream_MismatchedChannelsPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewStream() with uneven channels did not panic")
		}
	}()

	NewStream(8000, EncodingPCM16, []int16{1, 2}, []int16{1})
}

func TestCollect_SineReplays(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 2, EncodingPCM16, 800, 1000)

	first, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if first.Frames() != 800 || first.Channels() != 2 {
		t.Fatalf("Collect() = %d frames x %d channels, want 800 x 2", first.Frames(), first.Channels())
	}

	// 1 kHz at 8 kHz: sample 2 is the positive peak
	if got := first.Channel(0)[2]; got != 32767 {
		t.Errorf("peak sample = %d, want 32767", got)
	}
	if !slices.Equal(first.Channel(0), first.Channel(1)) {
		t.Error("sine channels differ")
	}

	src.Reset()
	second, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() after Reset error = %v", err)
	}
	if !slices.Equal(first.Channel(0), second.Channel(0)) {
		t.Error("Collect() after Reset() does not replay the same samples")
	}
}
