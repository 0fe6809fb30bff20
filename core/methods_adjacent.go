// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - NeighborIDs and every AdjacencyList slice use natural order.

package core

// NeighborIDs returns the vertices adjacent to id in natural order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	SortIDs(ids)

	return ids, nil
}

// Neighbors returns the edges incident to id, ordered by neighbor ID.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(nbrs))
	for _, nbr := range nbrs {
		if eid, ok := g.adjacency[id][nbr]; ok {
			out = append(out, g.edges[eid])
		}
	}

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
// Map iteration order is random; range over Vertices() for stable output.
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		nbrs := make([]string, 0, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			nbrs = append(nbrs, nbr)
		}
		SortIDs(nbrs)
		out[id] = nbrs
	}

	return out
}
