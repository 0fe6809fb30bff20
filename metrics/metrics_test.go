package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/metrics"
)

func TestRecorder(t *testing.T) {
	r := metrics.New()
	r.ObserveSolve("gophersat", "optimal", 250*time.Millisecond)
	r.SetModel("P6_♦2_K5", 120, 31)
	r.SetChromatic("P6_♦2_K5", 8)
	r.CountRun("optimal")
	r.CountRun("optimal")
	r.CountRun("skipped")

	n, err := testutil.GatherAndCount(r.Registry(), "packcolor_runs_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	expected := `
# HELP packcolor_chromatic_number Packing chromatic number found for a graph
# TYPE packcolor_chromatic_number gauge
packcolor_chromatic_number{graph="P6_♦2_K5"} 8
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "packcolor_chromatic_number"))

	path := filepath.Join(t.TempDir(), "packcolor.prom")
	require.NoError(t, r.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `packcolor_runs_total{status="optimal"} 2`)
	require.Contains(t, string(raw), `packcolor_model_cols{graph="P6_♦2_K5"} 31`)
	require.Contains(t, string(raw), `packcolor_solve_duration_seconds_count{backend="gophersat",status="optimal"} 1`)
}
