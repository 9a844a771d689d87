// SPDX-License-Identifier: EPL-2.0

package convolve

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/sensfilt/audio"
)

// unitImpulse stands in for an empty impulse response.
var unitImpulse = []float64{1.0}

// Engine filters a channel pair against a left and a right impulse response.
// The zero value is not usable; construct one with New.
type Engine struct {
	method   Method
	overflow Overflow
	parallel bool
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMethod sets the convolution method. Default MethodDirect.
func WithMethod(m Method) Option {
	return func(e *Engine) { e.method = m }
}

// WithOverflow sets the re-quantization overflow policy. Default OverflowWrap.
func WithOverflow(o Overflow) Option {
	return func(e *Engine) { e.overflow = o }
}

// WithParallel convolves left and right concurrently. Default true.
func WithParallel(p bool) Option {
	return func(e *Engine) { e.parallel = p }
}

// WithLogger sets the logger. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine. It fails on an unknown method or overflow policy.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		method:   MethodDirect,
		overflow: OverflowWrap,
		parallel: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.method.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, e.method)
	}
	if !e.overflow.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOverflow, e.overflow)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e, nil
}

// Channel filters one channel: full convolution with kernel, re-quantization
// to int16 and truncation to len(samples). An empty kernel is treated as the
// unit impulse, so the channel comes back unchanged.
func (e *Engine) Channel(side string, samples []int16, kernel []float64) ([]int16, error) {
	if len(kernel) == 0 {
		e.logger.Warn("empty impulse response, channel passes through unfiltered", "side", side)
		kernel = unitImpulse
	}

	signal := make([]float64, len(samples))
	for i, s := range samples {
		signal[i] = float64(s)
	}

	method := e.method.resolve(len(kernel))
	e.logger.Debug("convolving channel",
		"side", side,
		"frames", len(samples),
		"taps", len(kernel),
		"method", method,
	)

	full, err := Full(signal, kernel, method)
	if err != nil {
		return nil, fmt.Errorf("convolve %s: %w", side, err)
	}

	out, err := Requantize(full, len(samples), e.overflow)
	if err != nil {
		return nil, fmt.Errorf("convolve %s: %w", side, err)
	}

	return out, nil
}

// Process filters pair.Left with left and pair.Right with right. The sides
// never mix. The returned pair has the input's frame count and does not
// alias it.
func (e *Engine) Process(pair audio.ChannelPair, left, right []float64) (audio.ChannelPair, error) {
	var out audio.ChannelPair

	if !e.parallel {
		var err error
		if out.Left, err = e.Channel("left", pair.Left, left); err != nil {
			return audio.ChannelPair{}, err
		}
		if out.Right, err = e.Channel("right", pair.Right, right); err != nil {
			return audio.ChannelPair{}, err
		}
		return out, nil
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		out.Left, err = e.Channel("left", pair.Left, left)
		return err
	})
	g.Go(func() error {
		var err error
		out.Right, err = e.Channel("right", pair.Right, right)
		return err
	})
	if err := g.Wait(); err != nil {
		return audio.ChannelPair{}, err
	}

	return out, nil
}
