// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Two entry points:
//
//   - BFS walks a core.Graph by vertex ID with optional hooks, depth limit
//     and neighbor filtering. It backs verification and path reporting.
//   - Levels runs the same layering over a dense adjacency snapshot taken
//     with Dense. It writes into caller-owned slices and is what the
//     distance package runs once per source vertex.
//
// Determinism
//
//	core.Graph.NeighborIDs returns natural order, and BFS enqueues in that
//	order, so Order is reproducible across runs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per search.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ErrNeighbors, ctx errors or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo("7")
//
//	ids, adj, _ := bfs.Dense(g)
//	dist := make([]int, len(ids))
//	_ = bfs.Levels(ctx, adj, 0, 0, dist, nil)
package bfs
