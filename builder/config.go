// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn   = DefaultIDFn ("0","1","2",...)
//   - offset = 0
//   - rng    = nil (pure unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps a global vertex index to its ID.
	idFn IDFn
	// offset shifts every index a constructor emits; lets two
	// constructors share one graph without colliding.
	offset int
	// rng drives RandomSparse; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id returns the vertex ID for constructor-local index i.
func (c builderConfig) id(i int) string {
	return c.idFn(c.offset + i)
}
