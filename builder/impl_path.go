// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)-i for i=1..n-1.
//   - Cycle: n ≥ 3; path edges plus the closing edge (n-1)-0.
//   - Vertices are added in ascending index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
// Packing chromatic number: 2 for n ≤ 3, otherwise 3.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
