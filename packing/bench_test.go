package packing_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/distance"
	"github.com/katalvlaran/packcolor/packing"
)

// BenchmarkFormulate_Chain60 builds the full model for twelve bridged K_5
// (60 vertices, k = 60): O(n·k) columns and O(n²·k) packing rows.
func BenchmarkFormulate_Chain60(b *testing.B) {
	g, err := builder.Generate(builder.Params{P: 12, B: 1, K: 5}, builder.TopologyPath)
	if err != nil {
		b.Fatal(err)
	}
	dm, err := distance.Compute(context.Background(), g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = packing.Formulate(g, dm); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVerify_Chain60 checks the first-fit coloring of the same graph.
func BenchmarkVerify_Chain60(b *testing.B) {
	g, err := builder.Generate(builder.Params{P: 12, B: 1, K: 5}, builder.TopologyPath)
	if err != nil {
		b.Fatal(err)
	}
	dm, err := distance.Compute(context.Background(), g)
	if err != nil {
		b.Fatal(err)
	}
	c := packing.Greedy(dm)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = packing.Verify(g, c); err != nil {
			b.Fatal(err)
		}
	}
}
