package packing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/distance"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/packing"
	"github.com/katalvlaran/packcolor/solver"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func matrix(t *testing.T, g *core.Graph) *distance.Matrix {
	t.Helper()
	dm, err := distance.Compute(context.Background(), g)
	require.NoError(t, err)

	return dm
}

func rowNames(m *ilp.Model) map[string]bool {
	out := make(map[string]bool, len(m.Constraints))
	for _, c := range m.Constraints {
		out[c.Name] = true
	}

	return out
}

func TestFormulate_PathOfThree(t *testing.T) {
	g := build(t, builder.Path(3))
	f, err := packing.Formulate(g, matrix(t, g))
	require.NoError(t, err)

	require.Equal(t, 3, f.K)
	require.Equal(t, []string{"0", "1", "2"}, f.IDs)
	require.False(t, f.Feasibility)

	st := f.Model.Stats()
	assert.Equal(t, 10, st.Cols, "3x3 binaries + z")
	assert.Equal(t, 9, st.Binaries)
	assert.Equal(t, 1, st.Integers)
	// 3 OneColor + (3+3+2) Pack + 9 MaxColor
	assert.Equal(t, 20, st.Rows)

	z, ok := f.Model.Var("z")
	require.True(t, ok)
	require.Equal(t, f.Z, z)
	require.Equal(t, 1.0, f.Model.Vars[z].Lower)
	require.Equal(t, 3.0, f.Model.Vars[z].Upper)
	require.Equal(t, []ilp.Term{{Var: z, Coef: 1}}, f.Model.Objective)

	x, ok := f.Model.Var("x_2_3")
	require.True(t, ok)
	require.Equal(t, f.X[2][2], x)

	names := rowNames(f.Model)
	assert.True(t, names["OneColor_0"])
	assert.True(t, names["Pack_0_1_color_1"])
	assert.True(t, names["Pack_0_2_color_2"])
	assert.False(t, names["Pack_0_2_color_1"], "distance 2 does not constrain color 1")
	assert.True(t, names["MaxColor_1_3"])
}

func TestFormulate_DisconnectedPairsAreFree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	f, err := packing.Formulate(g, nil)
	require.NoError(t, err)
	for name := range rowNames(f.Model) {
		assert.NotContains(t, name, "Pack_")
	}
}

func TestFormulate_Bounds(t *testing.T) {
	g := build(t, builder.Path(5))
	dm := matrix(t, g)

	f, err := packing.Formulate(g, dm, packing.WithColorBound(4))
	require.NoError(t, err)
	require.Equal(t, 4, f.K)

	f, err = packing.Formulate(g, dm, packing.WithColorBound(50))
	require.NoError(t, err)
	require.Equal(t, 5, f.K, "bound is clamped to |V|")

	f, err = packing.Formulate(g, dm, packing.WithGreedyBound())
	require.NoError(t, err)
	require.Equal(t, 3, f.K)

	f, err = packing.Formulate(g, dm, packing.WithFeasibility(2))
	require.NoError(t, err)
	require.True(t, f.Feasibility)
	require.Equal(t, -1, f.Z)
	require.Empty(t, f.Model.Objective)
	_, ok := f.Model.Var("z")
	require.False(t, ok)
	for name := range rowNames(f.Model) {
		assert.NotContains(t, name, "MaxColor_")
	}
}

func TestFormulate_Errors(t *testing.T) {
	_, err := packing.Formulate(core.NewGraph(), nil)
	require.ErrorIs(t, err, packing.ErrEmptyGraph)

	g := build(t, builder.Path(6))
	dm, err := distance.Compute(context.Background(), g, distance.WithCutoff(2))
	require.NoError(t, err)
	_, err = packing.Formulate(g, dm)
	require.Error(t, err, "cutoff below the color bound")

	require.Panics(t, func() { packing.WithColorBound(0) })
	require.Panics(t, func() { packing.WithFeasibility(-1) })
	require.Panics(t, func() { packing.WithWorkers(0) })
}

func TestDecode(t *testing.T) {
	g := build(t, builder.Path(2))
	f, err := packing.Formulate(g, nil)
	require.NoError(t, err)

	values := make([]float64, len(f.Model.Vars))
	values[f.X[0][1]] = 1
	values[f.X[1][0]] = 0.9999
	values[f.Z] = 2
	c, err := f.Decode(&ilp.Solution{Values: values})
	require.NoError(t, err)
	require.Equal(t, packing.Coloring{"0": 2, "1": 1}, c)

	values[f.X[1][0]] = 0.2
	_, err = f.Decode(&ilp.Solution{Values: values})
	require.ErrorIs(t, err, packing.ErrUncolored)

	_, err = f.Decode(&ilp.Solution{Status: ilp.Infeasible})
	require.ErrorIs(t, err, packing.ErrNoSolution)
}

func TestColoring_Classes(t *testing.T) {
	c := packing.Coloring{"10": 1, "2": 1, "3": 3}
	require.Equal(t, 3, c.NumColors())
	require.Equal(t, [][]string{{"2", "10"}, nil, {"3"}}, c.Classes())
	require.Equal(t, 0, packing.Coloring{}.NumColors())
}

func TestGreedy_Path(t *testing.T) {
	g := build(t, builder.Path(5))
	c := packing.Greedy(matrix(t, g))
	require.Equal(t, packing.Coloring{"0": 1, "1": 2, "2": 1, "3": 3, "4": 1}, c)
	require.NoError(t, packing.Verify(g, c))
}

func TestGreedy_AlwaysPacking(t *testing.T) {
	for _, cons := range []builder.Constructor{
		builder.Complete(5),
		builder.Cycle(7),
		builder.Grid(3, 4),
		builder.Wheel(6),
		builder.PathConnectedCliques(12, 2, 4),
		builder.CycleConnectedCliques(15, 2, 5),
	} {
		g := build(t, cons)
		require.NoError(t, packing.Verify(g, packing.Greedy(matrix(t, g))))
	}
}

func TestVerify(t *testing.T) {
	g := build(t, builder.Path(3))

	require.NoError(t, packing.Verify(g, packing.Coloring{"0": 1, "1": 2, "2": 1}))

	err := packing.Verify(g, packing.Coloring{"0": 2, "1": 1, "2": 2})
	require.ErrorIs(t, err, packing.ErrPackingViolation)
	var v *packing.Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, &packing.Violation{U: "0", V: "2", Color: 2, Distance: 2, Path: []string{"0", "1", "2"}}, v)

	err = packing.Verify(g, packing.Coloring{"0": 1, "1": 1, "2": 2})
	require.ErrorIs(t, err, packing.ErrPackingViolation)

	require.ErrorIs(t, packing.Verify(g, packing.Coloring{"0": 1, "1": 2}), packing.ErrUncolored)
	require.ErrorIs(t, packing.Verify(g, packing.Coloring{"0": 1, "1": 0, "2": 1}), packing.ErrBadColor)
	require.ErrorIs(t, packing.Verify(g, packing.Coloring{"0": 1, "1": 2, "2": 1, "9": 4}), packing.ErrBadColor)
}

func TestVerify_WitnessPath(t *testing.T) {
	g := build(t, builder.Cycle(6))

	err := packing.Verify(g, packing.Coloring{"0": 3, "1": 1, "2": 2, "3": 3, "4": 1, "5": 2})
	var v *packing.Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, "0", v.U)
	require.Equal(t, "3", v.V)
	require.Equal(t, 3, v.Distance)
	require.Len(t, v.Path, v.Distance+1)
	require.Equal(t, "0", v.Path[0])
	require.Equal(t, "3", v.Path[len(v.Path)-1])
	for i := 1; i < len(v.Path); i++ {
		require.True(t, g.HasEdge(v.Path[i-1], v.Path[i]), "step %s-%s", v.Path[i-1], v.Path[i])
	}
}

func TestVerify_DisconnectedSameColor(t *testing.T) {
	g := build(t, builder.Path(2))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOffset(2)}, builder.Path(2)))

	require.NoError(t, packing.Verify(g, packing.Coloring{"0": 2, "1": 1, "2": 2, "3": 1}))
}

func gophersat(t *testing.T) ilp.Solver {
	t.Helper()
	s, err := solver.New(solver.GophersatName, ilp.Options{})
	require.NoError(t, err)

	return s
}

func TestSolve_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"K4", builder.Complete(4), 4},
		{"P3", builder.Path(3), 2},
		{"P4", builder.Path(4), 3},
		{"C4", builder.Cycle(4), 3},
		{"C5", builder.Cycle(5), 4},
		{"star6", builder.Star(6), 2},
		// two triangles bridged: colors 1 and 2 repeat, 3 and 4 do not
		{"cliques-6-1-3", builder.PathConnectedCliques(6, 1, 3), 4},
	}
	s := gophersat(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.cons)
			res, err := packing.Solve(context.Background(), g, s)
			require.NoError(t, err)
			require.True(t, res.Optimal())
			require.Equal(t, tc.want, res.Chromatic)
			require.Equal(t, float64(tc.want), res.Solution.Objective)
			require.NoError(t, packing.Verify(g, res.Coloring))
		})
	}
}

func TestSolve_GreedyBoundMatches(t *testing.T) {
	g, err := builder.Generate(builder.Params{P: 9, B: 1, K: 3}, builder.TopologyCycle)
	require.NoError(t, err)
	s := gophersat(t)

	full, err := packing.Solve(context.Background(), g, s)
	require.NoError(t, err)
	greedy, err := packing.Solve(context.Background(), g, s, packing.WithGreedyBound(), packing.WithWorkers(2))
	require.NoError(t, err)

	require.Equal(t, full.Chromatic, greedy.Chromatic)
	require.LessOrEqual(t, greedy.K, full.K)
	require.Less(t, greedy.Stats.Cols, full.Stats.Cols)
}

func TestSolve_Feasibility(t *testing.T) {
	g := build(t, builder.Cycle(5))
	s := gophersat(t)

	res, err := packing.Solve(context.Background(), g, s, packing.WithFeasibility(3))
	require.NoError(t, err)
	require.Equal(t, ilp.Infeasible, res.Status)
	require.False(t, res.Colorable())
	require.False(t, res.Optimal())
	require.Nil(t, res.Coloring)

	res, err = packing.Solve(context.Background(), g, s, packing.WithFeasibility(4))
	require.NoError(t, err)
	require.True(t, res.Colorable())
	require.False(t, res.Optimal())
	require.Equal(t, ilp.Feasible, res.Status)
	require.LessOrEqual(t, res.Chromatic, 4)
}

// Any 1-coloring of isolated vertices answers the decision model, which
// says nothing about minimality.
func TestSolve_FeasibilityIsNotOptimal(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}

	res, err := packing.Solve(context.Background(), g, gophersat(t), packing.WithFeasibility(1))
	require.NoError(t, err)
	require.True(t, res.Feasibility)
	require.True(t, res.Colorable())
	require.False(t, res.Optimal())
	require.Equal(t, ilp.Feasible, res.Status)
	require.Equal(t, 1, res.Chromatic)
}

type fakeSolver struct {
	sol *ilp.Solution
	err error
}

func (f fakeSolver) Name() string { return "fake" }

func (f fakeSolver) Solve(context.Context, *ilp.Model) (*ilp.Solution, error) {
	return f.sol, f.err
}

func TestSolve_BackendFailures(t *testing.T) {
	g := build(t, builder.Path(3))
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := packing.Solve(ctx, g, fakeSolver{err: boom})
	require.ErrorIs(t, err, boom)

	res, err := packing.Solve(ctx, g, fakeSolver{sol: &ilp.Solution{Status: ilp.TimeLimit}})
	require.ErrorIs(t, err, packing.ErrNoSolution)
	require.Equal(t, ilp.TimeLimit, res.Status)
	require.False(t, res.Optimal())

	// every vertex on color 1: decodes fine, fails verification
	f, err := packing.Formulate(g, nil)
	require.NoError(t, err)
	values := make([]float64, len(f.Model.Vars))
	for v := range f.IDs {
		values[f.X[v][0]] = 1
	}
	_, err = packing.Solve(ctx, g, fakeSolver{sol: &ilp.Solution{Status: ilp.Optimal, Values: values}})
	require.ErrorIs(t, err, packing.ErrPackingViolation)

	_, err = packing.Solve(ctx, core.NewGraph(), fakeSolver{})
	require.ErrorIs(t, err, packing.ErrEmptyGraph)
}

func TestSolve_Canceled(t *testing.T) {
	g := build(t, builder.Path(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := packing.Solve(ctx, g, gophersat(t))
	require.ErrorIs(t, err, context.Canceled)
}
