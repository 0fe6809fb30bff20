// SPDX-License-Identifier: MIT
//
// impl_cliques.go - PathConnectedCliques(P, B, K) and
// CycleConnectedCliques(P, B, K).
//
// Shape:
//   - m = P/B copies of K_K; clique c owns local indices c*K .. c*K+K-1.
//   - Clique c > 0 is attached by the bridge (c-1)*K + B-1 to c*K, i.e.
//     from the exit vertex (local B-1) of the previous clique to the
//     entry vertex (local 0) of clique c.
//   - The cycle variant adds the closing edge (m-1)*K + B-1 to 0.
//
// Emission order: clique 0 edges, then for each c ≥ 1 clique c edges
// followed by its bridge, then the closing edge.
//
// Complexity: O(m*K) vertices, O(m*K²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

const (
	methodPathConnectedCliques  = "PathConnectedCliques"
	methodCycleConnectedCliques = "CycleConnectedCliques"
)

// validateCliqueChain checks P, B, K in the order size, block, divisibility.
func validateCliqueChain(method string, P, B, K int) error {
	switch {
	case P < 1 || B < 1 || K < 1:
		return fmt.Errorf("%s: P=%d, B=%d, K=%d must be positive: %w", method, P, B, K, ErrTooFewVertices)
	case B > K:
		return fmt.Errorf("%s: B=%d > K=%d: %w", method, B, K, ErrBlockExceedsClique)
	case P%B != 0:
		return fmt.Errorf("%s: P=%d %% B=%d = %d: %w", method, P, B, P%B, ErrNotDivisible)
	}

	return nil
}

// PathConnectedCliques returns a Constructor for a chain of P/B cliques
// K_K whose path vertices form P_P.
func PathConnectedCliques(P, B, K int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateCliqueChain(methodPathConnectedCliques, P, B, K); err != nil {
			return err
		}

		return buildCliqueChain(g, cfg, methodPathConnectedCliques, P/B, B, K)
	}
}

// CycleConnectedCliques returns a Constructor for the closed chain: the
// path-connected cliques plus an edge from the last exit vertex back to
// vertex 0. Closures that would be a loop or repeat a clique or bridge
// edge (e.g. a single clique) are rejected with ErrDegenerateCycle.
func CycleConnectedCliques(P, B, K int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateCliqueChain(methodCycleConnectedCliques, P, B, K); err != nil {
			return err
		}
		m := P / B
		last := (m-1)*K + B - 1
		switch {
		case last == 0:
			return fmt.Errorf("%s: closing edge %s-%s is a loop: %w",
				methodCycleConnectedCliques, cfg.id(last), cfg.id(0), ErrDegenerateCycle)
		case m == 1 || (m == 2 && B == 1):
			return fmt.Errorf("%s: closing edge %s-%s already exists: %w",
				methodCycleConnectedCliques, cfg.id(last), cfg.id(0), ErrDegenerateCycle)
		}
		if err := buildCliqueChain(g, cfg, methodCycleConnectedCliques, m, B, K); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycleConnectedCliques, last, 0)
	}
}

// buildCliqueChain emits m cliques of size K and the bridges between them.
func buildCliqueChain(g *core.Graph, cfg builderConfig, method string, m, B, K int) error {
	if err := addVertices(g, cfg, method, m*K); err != nil {
		return err
	}
	for c := 0; c < m; c++ {
		base := c * K
		if err := addClique(g, cfg, method, base, K); err != nil {
			return err
		}
		if c == 0 {
			continue
		}
		if err := addEdge(g, cfg, method, base-K+B-1, base); err != nil {
			return err
		}
	}

	return nil
}
