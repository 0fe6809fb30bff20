// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of vertices, edges and adjacency.
// Vertex Metadata maps are shared, not copied.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithName(g.name), WithVertexCapacity(len(g.vertices)))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, seq: e.seq}
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}
