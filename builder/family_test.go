package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/core"
)

func buildFamily(t *testing.T, spec builder.FamilySpec, ids string) *core.Graph {
	t.Helper()
	cons, bopts, err := spec.Constructor()
	require.NoError(t, err)
	idOpt, err := builder.ParseIDScheme(ids)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, append(bopts, idOpt), cons)
	require.NoError(t, err)

	return g
}

func TestFamilySpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec         builder.FamilySpec
		stem         string
		wantV, wantE int
	}{
		{builder.FamilySpec{Family: builder.FamilyPath, N: 4}, "path_4", 4, 3},
		{builder.FamilySpec{Family: builder.FamilyCycle, N: 5}, "cycle_5", 5, 5},
		{builder.FamilySpec{Family: builder.FamilyComplete, N: 4}, "complete_4", 4, 6},
		{builder.FamilySpec{Family: builder.FamilyBipartite, N: 2, M: 3}, "bipartite_2x3", 5, 6},
		{builder.FamilySpec{Family: builder.FamilyStar, N: 5}, "star_5", 5, 4},
		{builder.FamilySpec{Family: builder.FamilyWheel, N: 6}, "wheel_6", 6, 10},
		{builder.FamilySpec{Family: builder.FamilyGrid, N: 3, M: 4}, "grid_3x4", 12, 17},
		{builder.FamilySpec{Family: builder.FamilyRandom, N: 6, Prob: 1, Seed: 3}, "random_6_p1_s3", 6, 15},
	}
	for _, tc := range tests {
		g := buildFamily(t, tc.spec, "")
		require.Equal(t, tc.stem, tc.spec.String())
		require.Equal(t, tc.wantV, g.VertexCount(), tc.stem)
		require.Equal(t, tc.wantE, g.EdgeCount(), tc.stem)
	}
}

func TestFamilySpec_RandomIsSeeded(t *testing.T) {
	t.Parallel()

	spec := builder.FamilySpec{Family: builder.FamilyRandom, N: 12, Prob: 0.3, Seed: 7}
	a := buildFamily(t, spec, "")
	b := buildFamily(t, spec, "")
	require.Equal(t, edgeSet(a), edgeSet(b))

	spec.Seed = 8
	c := buildFamily(t, spec, "")
	require.Equal(t, 12, c.VertexCount())
}

func TestParseIDScheme(t *testing.T) {
	t.Parallel()

	path := builder.FamilySpec{Family: builder.FamilyPath, N: 3}
	require.Equal(t, []string{"A", "B", "C"}, buildFamily(t, path, "excel").Vertices())
	require.Equal(t, []string{"v0", "v1", "v2"}, buildFamily(t, path, "prefix:v").Vertices())
	require.Equal(t, []string{"0", "1", "2"}, buildFamily(t, path, "decimal").Vertices())

	_, err := builder.ParseIDScheme("roman")
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
	_, err = builder.ParseIDScheme("prefix:")
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
}

func TestParseFamily(t *testing.T) {
	t.Parallel()

	f, err := builder.ParseFamily(" Grid ")
	require.NoError(t, err)
	require.Equal(t, builder.FamilyGrid, f)

	_, err = builder.ParseFamily("petersen")
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
	_, _, err = builder.FamilySpec{Family: "petersen"}.Constructor()
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
}
