// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the method name
// and offending values with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, P, B, K, ...) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBlockExceedsClique indicates B > K in a clique-chain constructor.
var ErrBlockExceedsClique = errors.New("builder: block size exceeds clique size")

// ErrNotDivisible indicates P is not a multiple of B.
var ErrNotDivisible = errors.New("builder: path length not divisible by block size")

// ErrDegenerateCycle indicates the closing edge of CycleConnectedCliques
// would be a self-loop or duplicate an existing edge.
var ErrDegenerateCycle = errors.New("builder: degenerate cycle closure")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates an unrecognized Topology name.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrConstructFailed indicates a construction step failed outside the
// validation classes above (nil constructor, nil graph, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
