package runner

import (
	"fmt"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/config"
)

// Bound selects the color bound of each model.
type Bound string

const (
	// BoundN uses |V| colors.
	BoundN Bound = "n"
	// BoundGreedy uses the first-fit coloring size.
	BoundGreedy Bound = "greedy"
)

// Config drives a sweep.
type Config struct {
	PStart, PEnd int // PEnd 0 means unbounded
	B, K         int
	Topology     builder.Topology
	Bound        Bound
	StopAbove    int // 0 disables the threshold
	Workers      int // distance workers; 0 lets distance decide

	Render bool // PNG per graph
	DOT    bool // Graphviz per graph
	LP     bool // LP model per graph
}

// FromConfig converts a loaded file configuration.
func FromConfig(c *config.Config) (Config, error) {
	t, err := builder.ParseTopology(c.Topology)
	if err != nil {
		return Config{}, err
	}
	b := Bound(c.Bound)
	if b != BoundN && b != BoundGreedy {
		return Config{}, fmt.Errorf("runner: unknown bound %q", c.Bound)
	}

	return Config{
		PStart:    c.PStart,
		PEnd:      c.PEnd,
		B:         c.B,
		K:         c.K,
		Topology:  t,
		Bound:     b,
		StopAbove: c.StopAbove,
		Workers:   c.Workers,
		Render:    c.Render,
		DOT:       c.DOT,
		LP:        c.LP,
	}, nil
}

func (c Config) validate() error {
	if c.PStart < 1 {
		return fmt.Errorf("runner: PStart=%d must be >= 1", c.PStart)
	}
	if c.PEnd != 0 && c.PEnd < c.PStart {
		return fmt.Errorf("runner: PEnd=%d < PStart=%d", c.PEnd, c.PStart)
	}
	if _, err := c.Topology.Constructor(builder.Params{}); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	// P = B is the smallest candidate; if it fails, every P does.
	if err := (builder.Params{P: c.B, B: c.B, K: c.K}).Validate(); err != nil {
		return fmt.Errorf("runner: no P fits B=%d, K=%d: %w", c.B, c.K, err)
	}

	return nil
}
