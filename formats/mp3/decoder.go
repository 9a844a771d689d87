// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sensfilt/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	odd        []byte // half a sample left over from the previous Read
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 upmixes mono frames to stereo.
func (s *source) Channels() int { return 2 }

// Encoding is always 16-bit PCM, the only output go-mp3 produces.
func (s *source) Encoding() audio.Encoding { return audio.EncodingPCM16 }

func (s *source) Close() error { return nil }
func (s *source) BufSize() int { return cap(s.buf) / 2 } // return sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	carried := copy(s.buf, s.odd)
	s.odd = s.odd[:0]

	n := carried
	var err error
	for n < 2 && err == nil {
		var read int
		read, err = s.dec.Read(s.buf[n:])
		n += read
		if read == 0 && err == nil {
			err = io.EOF
		}
	}

	samples := n / 2
	if n%2 == 1 {
		s.odd = append(s.odd, s.buf[n-1])
	}

	// int16 little-endian
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
