// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair {i,j}, i<j, emitted once.
//   - CompleteBipartite: n1, n2 ≥ 1; left side is 0..n1-1, right side
//     n1..n1+n2-1; edges emitted left-major.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that builds K_n. Every vertex of K_n
// needs its own color, so its packing chromatic number is n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		return addClique(g, cfg, methodComplete, 0, n)
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
