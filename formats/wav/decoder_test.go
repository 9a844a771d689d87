// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sensfilt/audio"
)

// writeFixture encodes data with go-audio's encoder so headers for any bit
// depth and format tag can be produced.
func writeFixture(t *testing.T, sampleRate, bitDepth, channels, formatTag int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, sampleRate, bitDepth, channels, formatTag)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoder Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder Close() error = %v", err)
	}

	return path
}

func decodeFile(t *testing.T, path string) audio.Source {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return src
}

func TestDecoder_RoundTripStereo(t *testing.T) {
	t.Parallel()

	interleaved := []int16{1000, 500, 2000, 600, 3000, 700, -32768, 32767}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 2, interleaved); err != nil {
		t.Fatal(err)
	}

	// bytes.Buffer is not a ReadSeeker, so this covers the buffering path
	src, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 || src.Channels() != 2 || src.Encoding() != audio.EncodingPCM16 {
		t.Fatalf("Decode() = %d Hz, %d ch, %v; want 8000 Hz, 2 ch, pcm_s16",
			src.SampleRate(), src.Channels(), src.Encoding())
	}

	stream, err := audio.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if want := []int16{1000, 2000, 3000, -32768}; !slices.Equal(stream.Channel(0), want) {
		t.Errorf("left = %v, want %v", stream.Channel(0), want)
	}
	if want := []int16{500, 600, 700, 32767}; !slices.Equal(stream.Channel(1), want) {
		t.Errorf("right = %v, want %v", stream.Channel(1), want)
	}
}

func TestDecoder_RoundTripMonoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mono.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	samples := []int16{100, -200, 300, -400}
	if err := WriteWAV16(f, 8000, 1, samples); err != nil {
		t.Fatal(err)
	}
	f.Close()

	stream, err := audio.Collect(decodeFile(t, path))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if stream.Channels() != 1 || !slices.Equal(stream.Channel(0), samples) {
		t.Errorf("decoded %d channels %v, want mono %v", stream.Channels(), stream.Channel(0), samples)
	}
}

func TestDecoder_ReportsEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bitDepth  int
		formatTag int
		data      []int
		want      audio.Encoding
	}{
		{"8-bit", 8, formatPCM, []int{128, 129, 127, 128}, audio.EncodingPCMU8},
		{"16-bit", 16, formatPCM, []int{1, -1, 2, -2}, audio.EncodingPCM16},
		{"24-bit", 24, formatPCM, []int{1 << 20, -(1 << 20), 3, 4}, audio.EncodingPCM24},
		{"32-bit int", 32, formatPCM, []int{1 << 30, 2, 3, 4}, audio.EncodingPCM32},
		{"32-bit float", 32, formatIEEEFloat, []int{0, 1, 2, 3}, audio.EncodingFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := decodeFile(t, writeFixture(t, 22050, tt.bitDepth, 2, tt.formatTag, tt.data))
			if src.Encoding() != tt.want {
				t.Errorf("Encoding() = %v, want %v", src.Encoding(), tt.want)
			}
			if src.Channels() != 2 || src.SampleRate() != 22050 {
				t.Errorf("got %d ch at %d Hz, want 2 ch at 22050 Hz", src.Channels(), src.SampleRate())
			}
		})
	}
}

func TestDecoder_ManyChannels(t *testing.T) {
	t.Parallel()

	src := decodeFile(t, writeFixture(t, 48000, 16, 6, formatPCM, make([]int, 60)))
	if src.Channels() != 6 {
		t.Errorf("Channels() = %d, want 6", src.Channels())
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"text":  []byte("this is certainly not a RIFF file, just some text"),
		"empty": nil,
		"riff without wave": append([]byte("RIFF\x24\x00\x00\x00AVI "), make([]byte, 40)...),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(failingReader{})
	if err == nil || errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want the reader's error", err)
	}
}

// mockPCMReader replays fixed samples through the pcmReader interface.
type mockPCMReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockPCMReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &mockPCMReader{samples: []int{16384, -16384, 0, 32767, -32768}},
		channels: 1,
		bitDepth: 16,
		encoding: audio.EncodingPCM16,
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() = %d, %v; want 3, nil", n, err)
	}
	if want := []float32{0.5, -0.5, 0}; !slices.Equal(buf, want) {
		t.Errorf("ReadSamples() = %v, want %v", buf, want)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Errorf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt data chunk")
	src := &source{dec: &mockPCMReader{err: boom}, channels: 1, bitDepth: 16}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockPCMReader{samples: make([]int, 10)}, channels: 1, bitDepth: 16}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before reading = %d, want 4096", src.BufSize())
	}

	_, _ = src.ReadSamples(make([]float32, 8192))
	if src.BufSize() != 8192 {
		t.Errorf("BufSize() after reading = %d, want 8192", src.BufSize())
	}
}

func TestEncodingOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag, depth int
		want       audio.Encoding
	}{
		{formatPCM, 16, audio.EncodingPCM16},
		{formatPCM, 24, audio.EncodingPCM24},
		{formatExtensible, 16, audio.EncodingPCM16},
		{formatIEEEFloat, 32, audio.EncodingFloat32},
		{formatIEEEFloat, 64, audio.EncodingFloat64},
		{0x0002, 4, audio.EncodingUnknown}, // MS ADPCM
		{0x0006, 8, audio.EncodingUnknown}, // A-law
	}

	for _, tt := range tests {
		if got := encodingOf(tt.tag, tt.depth); got != tt.want {
			t.Errorf("encodingOf(%#x, %d) = %v, want %v", tt.tag, tt.depth, got, tt.want)
		}
	}
}
