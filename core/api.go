// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of a graph's size and shape.
type GraphStats struct {
	Name        string
	VertexCount int
	EdgeCount   int
	MinDegree   int
	MaxDegree   int
	// Components is the number of connected components (isolated vertices
	// count as one component each).
	Components int
}

// Name returns the name given via WithName ("" if none).
// Complexity: O(1).
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// Stats produces a deterministic snapshot of counts, degree range and
// connected components.
//
// Complexity: Time O(V + E), Space O(V).
// Locking: muVert then muEdgeAdj, both read.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := &GraphStats{
		Name:        g.name,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	if stats.VertexCount == 0 {
		return stats
	}

	first := true
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if first || d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		first = false
	}

	// Component count by iterative flood fill over the adjacency buckets.
	seen := make(map[string]bool, len(g.vertices))
	stack := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		if seen[id] {
			continue
		}
		stats.Components++
		seen[id] = true
		stack = append(stack[:0], id)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for nbr := range g.adjacency[cur] {
				if !seen[nbr] {
					seen[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
	}

	return stats
}
