// SPDX-License-Identifier: EPL-2.0

// Package impulse reads impulse responses stored as raw float64 samples:
// no header, no metadata, 8 bytes per coefficient.
package impulse

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

var (
	// ErrRead matches every impulse-response read failure.
	ErrRead = errors.New("impulse response read failure")

	// ErrTrailingBytes means the data length is not a multiple of 8.
	ErrTrailingBytes = errors.New("length is not a whole number of float64 values")

	ErrUnknownByteOrder = errors.New("unknown byte order")
)

const sampleSize = 8

// ByteOrder of the stored coefficients.
type ByteOrder string

const (
	LittleEndian ByteOrder = "little"
	BigEndian    ByteOrder = "big"
)

// IsValid reports whether o is a recognised byte order.
func (o ByteOrder) IsValid() bool {
	return o == LittleEndian || o == BigEndian
}

func (o ByteOrder) binary() (binary.ByteOrder, error) {
	switch o {
	case LittleEndian:
		return binary.LittleEndian, nil
	case BigEndian:
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, o)
}

// ReadError carries the path of the impulse response that could not be
// read. It matches ErrRead with errors.Is and also unwraps to the cause.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("impulse response %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error { return []error{ErrRead, e.Err} }

// Decode reads coefficients from r until EOF. An empty reader yields an
// empty, non-nil slice.
func Decode(r io.Reader, order ByteOrder) ([]float64, error) {
	bo, err := order.binary()
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(data)%sampleSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(data))
	}

	coeffs := make([]float64, len(data)/sampleSize)
	for i := range coeffs {
		coeffs[i] = math.Float64frombits(bo.Uint64(data[i*sampleSize:]))
	}

	return coeffs, nil
}

// Encode writes coefficients in the same raw layout Decode reads.
func Encode(w io.Writer, coeffs []float64, order ByteOrder) error {
	bo, err := order.binary()
	if err != nil {
		return err
	}

	buf := make([]byte, len(coeffs)*sampleSize)
	for i, c := range coeffs {
		bo.PutUint64(buf[i*sampleSize:], math.Float64bits(c))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadFile loads the impulse response at path. Any failure is a *ReadError.
func ReadFile(path string, order ByteOrder) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	coeffs, err := Decode(f, order)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return coeffs, nil
}

// Pair is the left and right impulse response of one filter.
type Pair struct {
	Left  []float64
	Right []float64
}

// ReadPair loads the left and right impulse responses named by left and
// right inside dir.
func ReadPair(dir, left, right string, order ByteOrder) (Pair, error) {
	l, err := ReadFile(filepath.Join(dir, left), order)
	if err != nil {
		return Pair{}, err
	}

	r, err := ReadFile(filepath.Join(dir, right), order)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Left: l, Right: r}, nil
}
