package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

// addVertices inserts cfg.id(0..n-1) into g.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects local indices i and j.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

// addClique connects every pair of local indices base..base+k-1, emitting
// (i, j) with i < j in lexicographic order.
// Complexity: O(k²).
func addClique(g *core.Graph, cfg builderConfig, method string, base, k int) error {
	for i := base; i < base+k; i++ {
		for j := i + 1; j < base+k; j++ {
			if err := addEdge(g, cfg, method, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
