// SPDX-License-Identifier: EPL-2.0

package sensfilt

import (
	"fmt"
	"os"

	"github.com/ik5/sensfilt/audio"
	"github.com/ik5/sensfilt/impulse"
)

// Result describes a completed FilterFile call.
type Result struct {
	// Output is the path of the written recording.
	Output string
	// SampleRate of both the input and the output, in Hz.
	SampleRate int
	// Frames per channel, identical for input and output.
	Frames int
	// Layout of the input before channel normalization.
	Layout audio.Layout
}

// FilterFile applies the impulse responses left and right, both found in
// irDir, to the recording at audioPath and writes a 16-bit stereo WAV next
// to it, named by OutputPath.
//
// Every failure is returned before the output file is created. An empty
// suffix and label would name the input itself; that is refused up front.
//
// Failures:
//   - input the validator rejects matches audio.ErrUnsupportedEncoding or
//     audio.ErrUnsupportedChannelLayout
//   - unreadable impulse responses match impulse.ErrRead
//   - decode and write failures match ErrAudioDecode and ErrAudioEncode
//   - an output name equal to the input matches ErrAudioEncode and
//     ErrOutputIsInput
func FilterFile(audioPath, irDir, left, right string, opts ...Option) (Result, error) {
	o := newOptions(opts)

	engine, err := o.newEngine()
	if err != nil {
		return Result{}, err
	}
	if !o.order.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", impulse.ErrUnknownByteOrder, o.order)
	}

	out := OutputPath(audioPath, o.suffix, o.label)
	if sameFile(out, audioPath) {
		return Result{}, fmt.Errorf("%w: %w: %q", ErrAudioEncode, ErrOutputIsInput, out)
	}

	stream, layout, err := decodeFile(o, audioPath)
	if err != nil {
		return Result{}, err
	}

	kernels, err := impulse.ReadPair(irDir, left, right, o.order)
	if err != nil {
		return Result{}, err
	}
	o.logger.Debug("impulse responses loaded",
		"dir", irDir,
		"left_taps", len(kernels.Left),
		"right_taps", len(kernels.Right),
	)

	pair := audio.Normalize(stream, layout, audioPath, o.logger)
	filtered, err := engine.Process(pair, kernels.Left, kernels.Right)
	if err != nil {
		return Result{}, err
	}

	if err := writeOutput(out, stream.SampleRate(), filtered.Interleave()); err != nil {
		return Result{}, err
	}

	o.logger.Info("filtered recording written",
		"input", audioPath,
		"output", out,
		"layout", layout,
		"frames", stream.Frames(),
		"sample_rate", stream.SampleRate(),
	)

	return Result{
		Output:     out,
		SampleRate: stream.SampleRate(),
		Frames:     stream.Frames(),
		Layout:     layout,
	}, nil
}

// Filter runs the in-memory part of the pipeline: validation, channel
// normalization and convolution. file only labels diagnostics.
func Filter(s *audio.Stream, file string, kernels impulse.Pair, opts ...Option) (audio.ChannelPair, error) {
	o := newOptions(opts)

	engine, err := o.newEngine()
	if err != nil {
		return audio.ChannelPair{}, err
	}

	layout, err := audio.Validate(s, file)
	if err != nil {
		return audio.ChannelPair{}, err
	}

	pair := audio.Normalize(s, layout, file, o.logger)

	return engine.Process(pair, kernels.Left, kernels.Right)
}

// decodeFile validates the declared format before reading any samples, so
// rejected files are never fully decoded.
func decodeFile(o *options, path string) (*audio.Stream, audio.Layout, error) {
	dec, ok := o.registry.ForPath(path)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %w: %q", ErrAudioDecode, ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrAudioDecode, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %q: %w", ErrAudioDecode, path, err)
	}
	defer src.Close()

	layout, err := audio.Validate(src, path)
	if err != nil {
		return nil, 0, err
	}

	stream, err := audio.Collect(src)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %q: %w", ErrAudioDecode, path, err)
	}
	o.logger.Debug("input decoded",
		"file", path,
		"layout", layout,
		"frames", stream.Frames(),
		"sample_rate", stream.SampleRate(),
	)

	return stream, layout, nil
}
