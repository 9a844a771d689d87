// SPDX-License-Identifier: EPL-2.0

package sensfilt

import (
	"log/slog"

	"github.com/ik5/sensfilt/audio"
	"github.com/ik5/sensfilt/convolve"
	"github.com/ik5/sensfilt/formats/aiff"
	"github.com/ik5/sensfilt/formats/mp3"
	"github.com/ik5/sensfilt/formats/vorbis"
	"github.com/ik5/sensfilt/formats/wav"
	"github.com/ik5/sensfilt/impulse"
)

// DefaultSuffix tags the output file name as filtered.
const DefaultSuffix = "_sensFilt"

type options struct {
	suffix   string
	label    string
	order    impulse.ByteOrder
	registry *audio.Registry
	logger   *slog.Logger
	engine   []convolve.Option
}

// Option configures FilterFile and Filter.
type Option func(*options)

// WithSuffix sets the tag appended to the input's base name. Default
// DefaultSuffix.
func WithSuffix(suffix string) Option {
	return func(o *options) { o.suffix = suffix }
}

// WithLabel sets an extra tag appended after the suffix. Default empty.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithByteOrder sets the byte order of the impulse-response files.
// Default impulse.LittleEndian.
func WithByteOrder(order impulse.ByteOrder) Option {
	return func(o *options) { o.order = order }
}

// WithRegistry replaces the decoder registry. Default DefaultRegistry().
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger used by every stage. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMethod selects the convolution method.
func WithMethod(m convolve.Method) Option {
	return func(o *options) { o.engine = append(o.engine, convolve.WithMethod(m)) }
}

// WithOverflow selects the re-quantization overflow policy.
func WithOverflow(p convolve.Overflow) Option {
	return func(o *options) { o.engine = append(o.engine, convolve.WithOverflow(p)) }
}

// WithParallel toggles concurrent left/right convolution.
func WithParallel(p bool) Option {
	return func(o *options) { o.engine = append(o.engine, convolve.WithParallel(p)) }
}

func newOptions(opts []Option) *options {
	o := &options{
		suffix: DefaultSuffix,
		order:  impulse.LittleEndian,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

func (o *options) newEngine() (*convolve.Engine, error) {
	return convolve.New(append(o.engine, convolve.WithLogger(o.logger))...)
}

// DefaultRegistry returns a registry holding every bundled decoder, keyed
// by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}
