// Package packcolor computes packing chromatic numbers with integer
// programming.
//
// A packing coloring gives every vertex a color 1..k so that vertices of
// color i are pairwise more than i hops apart. The least k that works is
// the packing chromatic number χ_ρ(G). packcolor generates clique-chain
// graphs, formulates the Shao–Vesel ILP over their distance matrix, hands
// it to a pluggable backend and verifies the answer independently.
//
// Packages:
//
//	core/:         thread-safe simple undirected Graph with natural vertex order
//	builder/:      clique chains (P, B, K) in path and cycle topology, plus small families
//	bfs/:          breadth-first search with hooks and a dense level search
//	distance/:     parallel all-pairs hop distances
//	ilp/:          solver-neutral model, LP writer, Solution and Solver interface
//	solver/:       backend registry: gophersat (pure Go), cplex, highs-cli, highs (cgo)
//	packing/:      Formulate, Decode, Verify, Greedy and the Solve pipeline
//	converters/:   exports to dominikbraun/graph and gonum
//	render/:       PNG (tab20 palette) and Graphviz output
//	graphio/:      adjlist and coloring-report files, artifact paths
//	cache/:        fingerprinted on-disk result cache
//	config/:       CUE-validated run configuration
//	metrics/:      Prometheus textfile metrics
//	runner/:       the P sweep with a chromatic-number threshold
//	cmd/packcolor: the CLI
//
// Quick ASCII example, two K_3 bridged with B = 1:
//
//	  1       4
//	 / \     / \
//	2───0───3───5
//
//	χ_ρ = 4: colors 1 and 2 appear in both triangles, 3 and 4 only once.
package packcolor
