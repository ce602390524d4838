package spline

import (
	"fmt"
	"log/slog"
	"math"
)

// Option configures the construction of a spline.
type Option func(*options)

type options struct {
	alpha  float64
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		alpha:  0,
		logger: nil, // package logger
	}
}

// WithAlpha sets the exponent used to space knots. The distance between two
// consecutive control points, raised to alpha, becomes the parameter distance
// between their knots.
//
// An alpha of 0 (the default) spaces knots uniformly, 0.5 gives centripetal
// parameterization and 1 gives chord-length parameterization.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithLogger sets the logger used while constructing the spline, overriding
// the package logger set with [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.alpha) || o.alpha < 0 || o.alpha > 1 {
		return o, fmt.Errorf("%w: got %g", ErrInvalidAlpha, o.alpha)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o, nil
}
