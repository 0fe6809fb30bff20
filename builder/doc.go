// Package builder provides deterministic constructors for the simple
// undirected graphs that packing colorings are computed on.
//
// What
//
//   - BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     constructors in order. Constructors are plain closures
//     (func(*core.Graph, builderConfig) error), so fixtures compose.
//   - Classic families: Path, Cycle, Complete, Star, Wheel, Grid,
//     CompleteBipartite and the seeded RandomSparse.
//   - Clique chains: PathConnectedCliques(P, B, K) and
//     CycleConnectedCliques(P, B, K) build P/B copies of K_K linked by a
//     single bridge edge. The P "path vertices" (local indices 0..B-1 of
//     every clique) form a path, or a cycle for the closed variant, whose
//     consecutive blocks of B vertices each lie inside one clique.
//   - Params{P, B, K} bundles the three generator integers with
//     validation and the canonical file stem ("P6_♦2_K5"), and
//     Generate(params, topology) is the one-call entry point used by the
//     sweep runner and the CLI.
//
// Determinism
//
//	Same parameters and options produce the same vertex IDs, the same edge
//	insertion order and therefore the same core edge IDs. RandomSparse is
//	deterministic for a fixed WithSeed.
//
// IDs
//
//	Every constructor labels vertices cfg.idFn(offset + i). The default
//	scheme is decimal ("0", "1", ...), which round-trips through adjacency
//	list files and sorts naturally in core.
//
// Errors
//
//	ErrTooFewVertices, ErrBlockExceedsClique, ErrNotDivisible,
//	ErrDegenerateCycle, ErrInvalidProbability, ErrNeedRandSource,
//	ErrUnknownTopology, ErrConstructFailed. Constructors never panic;
//	option constructors (WithX) panic on meaningless input.
package builder
