package colortransform

import "log/slog"

// Option configures a bulk conversion call.
//
// Example:
//
//	// Checked conversion, split across a shared pool.
//	pool := colortransform.NewPool(0)
//	defer pool.Close()
//	px, err := colortransform.FromLinearToSRGB[uint8](img,
//	    colortransform.WithStrict(true),
//	    colortransform.WithPool(pool))
type Option func(*options)

// options holds the configuration of one conversion call.
type options struct {
	strict bool
	pool   *Pool
	logger *slog.Logger
}

// defaultOptions returns the options used when none are given.
func defaultOptions() options {
	return options{
		strict: defaultStrict,
		pool:   nil, // serial
		logger: nil, // package logger
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithStrict enables or disables precondition checks.
//
// With strict off (the default unless built with the colortransform_strict
// tag), bulk conversions trust their arguments: a wrong channel count, short
// buffer or bad stride may panic on a slice bound or produce meaningless
// pixels. With strict on, the same mistakes are reported as errors wrapping
// ErrInvalidDimensions, ErrChannelCount, ErrInvalidStride or
// ErrDataTooSmall.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithPool runs the conversion on p, one horizontal band of rows per work
// item. Output is identical to a serial run. A nil pool means serial.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithLogger overrides the package logger for a single call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
