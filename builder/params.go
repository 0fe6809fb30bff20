// SPDX-License-Identifier: MIT
//
// params.go - generator parameters and topology selection.

package builder

import (
	"fmt"
	"strings"
)

// Params are the three generator integers: path length P, block size B
// and clique size K.
type Params struct {
	P int `json:"P"`
	B int `json:"B"`
	K int `json:"K"`
}

// Validate reports whether p describes a constructible clique chain.
func (p Params) Validate() error {
	return validateCliqueChain("Params", p.P, p.B, p.K)
}

// String returns the file stem used for every artifact of a run,
// e.g. "P6_♦2_K5".
func (p Params) String() string {
	return fmt.Sprintf("P%d_♦%d_K%d", p.P, p.B, p.K)
}

// Cliques returns m = P/B, the number of cliques in the chain.
func (p Params) Cliques() (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	return p.P / p.B, nil
}

// VertexCount returns m*K, the order of the generated graph.
func (p Params) VertexCount() (int, error) {
	m, err := p.Cliques()
	if err != nil {
		return 0, err
	}

	return m * p.K, nil
}

// Topology selects how consecutive cliques are linked.
type Topology string

const (
	// TopologyPath links cliques in an open chain.
	TopologyPath Topology = "path"
	// TopologyCycle closes the chain back to vertex 0.
	TopologyCycle Topology = "cycle"
)

// Topologies lists the accepted topology names.
func Topologies() []Topology {
	return []Topology{TopologyPath, TopologyCycle}
}

// ParseTopology accepts "path" or "cycle" (case-insensitive).
func ParseTopology(s string) (Topology, error) {
	t := Topology(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TopologyPath, TopologyCycle:
		return t, nil
	}

	return "", fmt.Errorf("ParseTopology(%q): %w", s, ErrUnknownTopology)
}

// Constructor returns the clique-chain constructor for p.
func (t Topology) Constructor(p Params) (Constructor, error) {
	switch t {
	case TopologyPath:
		return PathConnectedCliques(p.P, p.B, p.K), nil
	case TopologyCycle:
		return CycleConnectedCliques(p.P, p.B, p.K), nil
	}

	return nil, fmt.Errorf("topology %q: %w", string(t), ErrUnknownTopology)
}
