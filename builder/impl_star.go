// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; hub is local index 0, leaves 1..n-1.
//   - Wheel: n ≥ 4; hub 0 plus the rim cycle 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a hub joined to every
// vertex of an (n-1)-cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Star(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := addEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}
