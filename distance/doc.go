// Package distance computes all-pairs hop distances of a core.Graph.
//
// Compute snapshots the graph once (bfs.Dense), then runs one level
// search per source vertex on a bounded worker pool. Every task writes
// only its own row of the flat n×n matrix, so no locking is needed
// while the pool runs.
//
// Row and column order is g.Vertices(), i.e. core natural order, which
// is also the variable order of the packing formulation.
//
// Unreachable pairs (different components, or farther than the cutoff)
// hold Unreachable (-1).
package distance
