package packing

import (
	"github.com/katalvlaran/packcolor/distance"
)

// Greedy returns the first-fit packing coloring in matrix row order: each
// vertex takes the smallest color whose class stays a packing. Its
// NumColors is an upper bound on the packing chromatic number and is the
// bound WithGreedyBound feeds into the formulation.
//
// dm must have been computed without a cutoff, or with one at least as
// large as the colors Greedy ends up using.
func Greedy(dm *distance.Matrix) Coloring {
	n := dm.N()
	ids := dm.IDs()
	var classes [][]int
	out := make(Coloring, n)

	for v := 0; v < n; v++ {
		color := 0
		for c := 1; color == 0; c++ {
			if c > len(classes) {
				classes = append(classes, nil)
			}
			fits := true
			for _, u := range classes[c-1] {
				if d := dm.At(u, v); d != distance.Unreachable && d <= c {
					fits = false
					break
				}
			}
			if fits {
				color = c
			}
		}
		classes[color-1] = append(classes[color-1], v)
		out[ids[v]] = color
	}

	return out
}
