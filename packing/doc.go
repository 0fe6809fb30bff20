// Package packing formulates, solves and verifies packing colorings.
//
// A packing k-coloring of G assigns each vertex a color in 1..k such that
// any two distinct vertices sharing color i are at distance greater
// than i. The packing chromatic number χ_ρ(G) is the least such k.
//
// Formulate builds the Shao–Vesel integer program over an all-pairs
// distance matrix:
//
//	minimize   z
//	OneColor_v          Σ_i x_v_i = 1                 for every v
//	Pack_u_v_color_i    x_u_i + x_v_i <= 1            1 <= d(u,v) <= i <= k
//	MaxColor_v_i        i·x_v_i - z <= 0              for every v, i
//	x_v_i ∈ {0,1}, z ∈ [1, k]
//
// Columns and rows are named by the row index of the vertex in natural
// order, so a graph with IDs "0".."n-1" yields x_<id>_<i>. Disconnected
// pairs impose nothing.
//
// Verify is independent of the formulation: it checks every color class
// with a depth-bounded bfs.BFS on the graph itself, so a bug in the
// distance matrix or the model cannot hide a bad answer. A violation
// carries a shortest witness path found with dominikbraun/graph.
//
// Solve chains distance → formulate → ilp.Solver → decode → verify.
package packing
