package packing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

// Sentinel errors.
var (
	// ErrEmptyGraph is returned for graphs without vertices.
	ErrEmptyGraph = errors.New("packing: graph has no vertices")

	// ErrUncolored means a vertex has no color.
	ErrUncolored = errors.New("packing: vertex has no color")

	// ErrBadColor means a color is < 1 or a colored vertex is not in the graph.
	ErrBadColor = errors.New("packing: invalid color")

	// ErrPackingViolation means two vertices of color i are within distance i.
	ErrPackingViolation = errors.New("packing: packing condition violated")

	// ErrNoSolution means the backend returned no assignment.
	ErrNoSolution = errors.New("packing: solver returned no assignment")
)

// Coloring maps vertex IDs to colors 1..k.
type Coloring map[string]int

// NumColors returns the largest color used, which is the number of
// colors of the coloring (0 for an empty coloring).
func (c Coloring) NumColors() int {
	k := 0
	for _, col := range c {
		if col > k {
			k = col
		}
	}

	return k
}

// Classes returns the color classes: Classes()[i-1] holds the vertices of
// color i in natural order. Unused colors give empty classes.
func (c Coloring) Classes() [][]string {
	classes := make([][]string, c.NumColors())
	for id, col := range c {
		if col >= 1 {
			classes[col-1] = append(classes[col-1], id)
		}
	}
	for _, cl := range classes {
		core.SortIDs(cl)
	}

	return classes
}

// Violation describes two vertices of the same color that are too close.
type Violation struct {
	U, V     string
	Color    int
	Distance int
	// Path is a shortest U..V path, both ends included.
	Path []string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("packing: %s and %s have color %d at distance %d", v.U, v.V, v.Color, v.Distance)
}

// Unwrap lets errors.Is match ErrPackingViolation.
func (v *Violation) Unwrap() error { return ErrPackingViolation }
