package distance

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	workers int
	cutoff  int
	logger  *zap.Logger
}

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
}

// WithWorkers bounds the number of concurrent searches. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("distance: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithCutoff stops every search at depth d; farther pairs are reported
// Unreachable. d == 0 means no cutoff. Panics if d < 0.
//
// The packing formulation never needs distances above its color bound k,
// so callers pass k here to bound each search.
func WithCutoff(d int) Option {
	if d < 0 {
		panic("distance: WithCutoff(d<0)")
	}
	return func(o *options) { o.cutoff = d }
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
