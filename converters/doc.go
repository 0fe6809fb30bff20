// Package converters exports core.Graph into the graph libraries the rest
// of the module leans on:
//   - dominikbraun/graph, for the witness path of a packing violation
//   - gonum/graph, for force-directed layout
//
// Both exports are snapshots; later changes to the core.Graph are not
// reflected.
package converters
