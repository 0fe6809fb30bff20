package runner_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/cache"
	"github.com/katalvlaran/packcolor/config"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/metrics"
	"github.com/katalvlaran/packcolor/runner"
	"github.com/katalvlaran/packcolor/solver"
)

func gophersat(t *testing.T) ilp.Solver {
	t.Helper()
	s, err := solver.New(solver.GophersatName, ilp.Options{})
	require.NoError(t, err)

	return s
}

func TestRun_ThresholdStopsSweep(t *testing.T) {
	paths := graphio.Paths{Dir: t.TempDir()}
	rec := metrics.New()
	r, err := runner.New(runner.Config{
		PStart: 1, B: 1, K: 3,
		Topology:  builder.TopologyPath,
		StopAbove: 3,
	}, gophersat(t), paths, runner.WithMetrics(rec), runner.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	steps, err := r.Run(context.Background())
	require.ErrorIs(t, err, runner.ErrThresholdExceeded)
	require.Len(t, steps, 2)
	require.Equal(t, 3, steps[0].Chromatic, "a single triangle")
	require.Equal(t, 4, steps[1].Chromatic, "two bridged triangles")
	require.Equal(t, "optimal", steps[1].Status)

	last := steps[1].Stem
	for _, p := range []string{paths.Graph(last), paths.Coloring(last), paths.Image(last), paths.Plain(last)} {
		require.FileExists(t, p)
	}
	require.NoFileExists(t, paths.Image(steps[0].Stem), "Render is off")

	f, err := os.Open(paths.Coloring(last))
	require.NoError(t, err)
	defer f.Close()
	c, chromatic, err := graphio.ReadColoring(f)
	require.NoError(t, err)
	require.Equal(t, 4, chromatic)
	require.Len(t, c, 6)

	expected := `
# HELP packcolor_runs_total Graphs processed, by outcome
# TYPE packcolor_runs_total counter
packcolor_runs_total{status="optimal"} 2
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected), "packcolor_runs_total"))
}

func TestRun_SkipsInvalidParams(t *testing.T) {
	paths := graphio.Paths{Dir: t.TempDir()}
	r, err := runner.New(runner.Config{
		PStart: 1, PEnd: 4, B: 2, K: 3,
		Topology: builder.TopologyPath,
		Bound:    runner.BoundGreedy,
		DOT:      true,
		LP:       true,
	}, gophersat(t), paths)
	require.NoError(t, err)

	steps, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, steps, 4)
	require.True(t, steps[0].Skipped)
	require.ErrorIs(t, steps[0].SkipReason, builder.ErrNotDivisible)
	require.False(t, steps[1].Skipped)
	require.Equal(t, 3, steps[1].Chromatic)
	require.True(t, steps[2].Skipped)
	require.False(t, steps[3].Skipped)

	require.FileExists(t, paths.DOT(steps[3].Stem))
	require.FileExists(t, paths.LP(steps[3].Stem))
}

func TestRun_Cache(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	cfg := runner.Config{PStart: 1, PEnd: 2, B: 1, K: 3, Topology: builder.TopologyPath}

	r, err := runner.New(cfg, gophersat(t), graphio.Paths{Dir: t.TempDir()}, runner.WithCache(store))
	require.NoError(t, err)
	first, err := r.Run(context.Background())
	require.NoError(t, err)
	require.False(t, first[0].Cached)

	second, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	for i := range second {
		require.True(t, second[i].Cached)
		require.Equal(t, first[i].Chromatic, second[i].Chromatic)
	}
}

func TestRun_Canceled(t *testing.T) {
	r, err := runner.New(runner.Config{PStart: 1, B: 1, K: 5, Topology: builder.TopologyPath},
		gophersat(t), graphio.Paths{Dir: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	steps, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, steps)
}

func TestNew_RejectsHopelessConfig(t *testing.T) {
	s := gophersat(t)
	paths := graphio.Paths{Dir: t.TempDir()}

	_, err := runner.New(runner.Config{PStart: 1, B: 6, K: 5, Topology: builder.TopologyPath}, s, paths)
	require.ErrorIs(t, err, builder.ErrBlockExceedsClique)

	_, err = runner.New(runner.Config{PStart: 0, B: 1, K: 5, Topology: builder.TopologyPath}, s, paths)
	require.Error(t, err)

	_, err = runner.New(runner.Config{PStart: 5, PEnd: 2, B: 1, K: 5, Topology: builder.TopologyPath}, s, paths)
	require.Error(t, err)

	_, err = runner.New(runner.Config{PStart: 1, B: 1, K: 5, Topology: "star"}, s, paths)
	require.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = runner.New(runner.Config{PStart: 1, B: 1, K: 5, Topology: builder.TopologyPath}, nil, paths)
	require.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Topology = "cycle"
	cfg.Bound = "greedy"

	rc, err := runner.FromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, builder.TopologyCycle, rc.Topology)
	require.Equal(t, runner.BoundGreedy, rc.Bound)
	require.Equal(t, 14, rc.StopAbove)
	require.True(t, rc.Render)

	cfg.Bound = "tight"
	_, err = runner.FromConfig(cfg)
	require.Error(t, err)
}
