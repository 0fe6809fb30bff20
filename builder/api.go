// SPDX-License-Identifier: MIT
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig.
//   - Same inputs, options and constructor order produce identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with their method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the
// composition hook for callers that already own g (e.g. to append a
// second component with WithOffset).
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Generate builds the clique-chain graph for p in the given topology.
// The graph is named p.String() so logs and image titles carry the
// generator parameters.
func Generate(p Params, t Topology, bopts ...BuilderOption) (*core.Graph, error) {
	cons, err := t.Constructor(p)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", p, err)
	}
	gopts := []core.GraphOption{core.WithName(p.String())}
	if n, verr := p.VertexCount(); verr == nil {
		gopts = append(gopts, core.WithVertexCapacity(n))
	}

	return BuildGraph(gopts, bopts, cons)
}
