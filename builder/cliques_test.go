package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/builder"
)

func TestPathConnectedCliques(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.PathConnectedCliques(6, 2, 5))
	require.NoError(t, err)
	require.Equal(t, 15, g.VertexCount())
	require.Equal(t, 3*10+2, g.EdgeCount())

	// bridges join exit vertex (local 1) to the next entry vertex (local 0)
	require.True(t, g.HasEdge("1", "5"))
	require.True(t, g.HasEdge("6", "10"))
	require.False(t, g.HasEdge("11", "0"))

	// the path vertices form P_6
	pathVerts := []string{"0", "1", "5", "6", "10", "11"}
	for i := 1; i < len(pathVerts); i++ {
		require.Truef(t, g.HasEdge(pathVerts[i-1], pathVerts[i]), "path step %d", i)
	}
	require.Equal(t, 1, g.Stats().Components)
}

func TestPathConnectedCliques_BlockOne(t *testing.T) {
	// B = 1: each clique enters and exits through its first vertex.
	g, err := builder.BuildGraph(nil, nil, builder.PathConnectedCliques(3, 1, 4))
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 3*6+2, g.EdgeCount())
	require.True(t, g.HasEdge("0", "4"))
	require.True(t, g.HasEdge("4", "8"))
}

func TestPathConnectedCliques_SingleVertexCliquesArePath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.PathConnectedCliques(5, 1, 1))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	for i := 1; i < 5; i++ {
		require.True(t, g.HasEdge(strconv.Itoa(i-1), strconv.Itoa(i)))
	}
}

func TestCycleConnectedCliques(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.CycleConnectedCliques(6, 2, 5))
	require.NoError(t, err)
	require.Equal(t, 15, g.VertexCount())
	require.Equal(t, 33, g.EdgeCount())
	require.True(t, g.HasEdge("11", "0"))

	g2, err := builder.BuildGraph(nil, nil, builder.CycleConnectedCliques(3, 1, 2))
	require.NoError(t, err)
	require.True(t, g2.HasEdge("4", "0"))
}

func TestCliqueChain_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantErr error
	}{
		{"P=0", builder.PathConnectedCliques(0, 1, 5), builder.ErrTooFewVertices},
		{"K=0", builder.PathConnectedCliques(1, 1, 0), builder.ErrTooFewVertices},
		{"B>K", builder.PathConnectedCliques(6, 3, 2), builder.ErrBlockExceedsClique},
		{"P%B", builder.PathConnectedCliques(5, 2, 5), builder.ErrNotDivisible},
		{"cycle loop", builder.CycleConnectedCliques(1, 1, 5), builder.ErrDegenerateCycle},
		{"cycle one clique", builder.CycleConnectedCliques(2, 2, 5), builder.ErrDegenerateCycle},
		{"cycle duplicates bridge", builder.CycleConnectedCliques(2, 1, 5), builder.ErrDegenerateCycle},
		{"cycle B>K", builder.CycleConnectedCliques(4, 4, 3), builder.ErrBlockExceedsClique},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := builder.Params{P: 8, B: 2, K: 4}
	for _, topo := range builder.Topologies() {
		a, err := builder.Generate(p, topo)
		require.NoError(t, err)
		b, err := builder.Generate(p, topo)
		require.NoError(t, err)

		require.Equal(t, "P8_♦2_K4", a.Name())
		require.Equal(t, a.Vertices(), b.Vertices())
		ea, eb := a.Edges(), b.Edges()
		require.Len(t, eb, len(ea))
		for i := range ea {
			require.Equal(t, *ea[i], *eb[i])
		}
	}
}

func TestParams(t *testing.T) {
	p := builder.Params{P: 6, B: 2, K: 5}
	require.NoError(t, p.Validate())
	require.Equal(t, "P6_♦2_K5", p.String())
	n, err := p.VertexCount()
	require.NoError(t, err)
	require.Equal(t, 15, n)

	_, err = builder.Params{P: 5, B: 2, K: 5}.VertexCount()
	require.ErrorIs(t, err, builder.ErrNotDivisible)

	topo, err := builder.ParseTopology(" Cycle ")
	require.NoError(t, err)
	require.Equal(t, builder.TopologyCycle, topo)
	_, err = builder.ParseTopology("ring")
	require.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = builder.Generate(p, builder.Topology("ring"))
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
}
