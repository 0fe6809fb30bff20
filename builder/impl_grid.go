// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1.
//   - Cell (r, c) has local index r*cols + c (row-major).
//   - Per cell in row-major order: right edge, then down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for the rows×cols 4-neighborhood grid
// P_rows □ P_cols.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
