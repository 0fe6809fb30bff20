// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithOffset shifts vertex indices by n (n >= 0). Panics on negative n.
func WithOffset(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithOffset(n<0)")
	}
	return func(c *builderConfig) { c.offset = n }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded *rand.Rand, making RandomSparse reproducible.
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}
