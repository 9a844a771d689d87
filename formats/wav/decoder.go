// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sensfilt/audio"
)

// fmt chunk format tags
const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

// pcmReader is the part of gowav.Decoder the source reads from, so tests
// can substitute it.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	encoding   audio.Encoding
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int          { return s.sampleRate }
func (s *source) Channels() int            { return s.channels }
func (s *source) Encoding() audio.Encoding { return s.encoding }
func (s *source) Close() error             { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	// full scale of a signed integer sample: 2^(bitDepth-1)
	scale := float32(math.Ldexp(1, s.bitDepth-1))
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / scale
	}

	// Short reads happen at chunk-reader buffer boundaries, not only at the
	// end of the data chunk; the end is a read that returns nothing.
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// encodingOf maps the fmt chunk's format tag and bit depth to an Encoding.
// WAVE_FORMAT_EXTENSIBLE is treated as integer PCM; its sub-format GUID is
// not inspected.
func encodingOf(formatTag, bitDepth int) audio.Encoding {
	switch formatTag {
	case formatPCM, formatExtensible:
		return audio.PCMEncoding(bitDepth)
	case formatIEEEFloat:
		return audio.FloatEncoding(bitDepth)
	}
	return audio.EncodingUnknown
}

// Decoder reads RIFF/WAVE files of any PCM or float layout. It reports the
// file's real encoding; accepting or rejecting it is up to audio.Validate.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := dec.Format()
	if format == nil || dec.BitDepth == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		encoding:   encodingOf(int(dec.WavAudioFormat), int(dec.BitDepth)),
	}, nil
}
