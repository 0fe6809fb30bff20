package packing

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures Formulate and Solve.
type Option func(*options)

type options struct {
	bound       int  // explicit color bound; 0 means |V|
	greedy      bool // bound by the first-fit coloring
	feasibility int  // >0: fixed-k feasibility model
	workers     int
	logger      *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithColorBound caps the color range at k (clamped to |V|). A bound
// below the packing chromatic number makes the model infeasible.
// Panics if k < 1.
func WithColorBound(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("packing: WithColorBound(%d): bound must be >= 1", k))
	}

	return func(o *options) { o.bound = k }
}

// WithGreedyBound caps the color range at the first-fit coloring's size.
// It is ignored when WithColorBound is also given.
func WithGreedyBound() Option {
	return func(o *options) { o.greedy = true }
}

// WithFeasibility builds the decision model "is there a packing
// k-coloring": colors range over 1..k, there is no z column and the
// objective is empty. Panics if k < 1.
func WithFeasibility(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("packing: WithFeasibility(%d): k must be >= 1", k))
	}

	return func(o *options) { o.feasibility = k }
}

// WithWorkers sets the distance computation parallelism used by Solve.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("packing: WithWorkers(%d): workers must be >= 1", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used by Solve. nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
