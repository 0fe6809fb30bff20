// Package core provides a thread-safe in-memory simple undirected Graph
// with a minimal, composable API surface.
//
// Properties:
//
//   - Undirected, unweighted, no self-loops, no parallel edges. Packing
//     colorings are defined on exactly this class of graphs.
//   - Constant-time edge operations via mirrored maps:
//     adjacency[u][v] = adjacency[v][u] = edgeID
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices(), NeighborIDs() and AdjacencyList() slices follow natural
//	order: decimal IDs numerically ("2" < "10"), then other IDs
//	lexicographically. Edges() follows creation order. Index() maps every
//	ID to its position in Vertices(), which is the row order used by
//	distance matrices and ILP variable grids.
//
// Core Methods:
//
//	AddVertex(id string) error               // O(1), idempotent
//	HasVertex(id string) bool                // O(1)
//	RemoveVertex(id string) error            // O(deg)
//	AddEdge(u, v string) (string, error)     // O(1), creates endpoints
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(u, v string) bool                // O(1), symmetric
//	NeighborIDs(id string) ([]string, error) // O(d log d)
//	Clone() *Graph                           // O(V+E)
//	Stats() *GraphStats                      // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
