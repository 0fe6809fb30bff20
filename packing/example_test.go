// Package packing_test shows the solve pipeline end to end.
package packing_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/distance"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/packing"
	"github.com/katalvlaran/packcolor/solver"
)

// ExampleSolve colors two triangles joined by one bridge. Colors 1 and 2
// can repeat across the bridge, 3 and 4 cannot.
func ExampleSolve() {
	g, _ := builder.Generate(builder.Params{P: 2, B: 1, K: 3}, builder.TopologyPath)
	s, _ := solver.New(solver.GophersatName, ilp.Options{})

	res, err := packing.Solve(context.Background(), g, s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Name(), res.Chromatic, res.Status)
	// Output: P2_♦1_K3 4 optimal
}

// ExampleGreedy shows the first-fit bound on P_5.
func ExampleGreedy() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(5))
	dm, _ := distance.Compute(context.Background(), g)

	c := packing.Greedy(dm)
	fmt.Println(c.NumColors(), c.Classes())
	// Output: 3 [[0 2 4] [1] [3]]
}

// ExampleVerify reports the first pair that breaks the packing condition.
func ExampleVerify() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(3))

	err := packing.Verify(g, packing.Coloring{"0": 2, "1": 1, "2": 2})
	fmt.Println(err)
	// Output: packing: 0 and 2 have color 2 at distance 2
}
