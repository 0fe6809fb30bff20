package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, &config.Config{
		PStart:    1,
		B:         1,
		K:         5,
		Topology:  "path",
		Solver:    "gophersat",
		Bound:     "n",
		StopAbove: 14,
		OutDir:    "graphs",
		TimeLimit: "0s",
		Render:    true,
	}, cfg)

	d, err := cfg.Timeout()
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse("run.cue", []byte(`
p_start: 4
p_end:   20
b:       2
topology: "cycle"
bound:    "greedy"
time_limit: "90s"
render: false
`))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.PStart)
	require.Equal(t, 20, cfg.PEnd)
	require.Equal(t, 2, cfg.B)
	require.Equal(t, 5, cfg.K, "untouched fields keep defaults")
	require.Equal(t, "cycle", cfg.Topology)
	require.Equal(t, "greedy", cfg.Bound)
	require.False(t, cfg.Render)

	d, err := cfg.Timeout()
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   `colour: 3`,
		"bad topology":    `topology: "star"`,
		"negative k":      `k: 0`,
		"wrong type":      `render: "yes"`,
		"p_end too small": `p_start: 5, p_end: 3`,
		"bad duration":    `time_limit: "soon"`,
		"syntax":          `p_start: `,
	}
	for name, src := range cases {
		_, err := config.Parse(name+".cue", []byte(src))
		require.ErrorIsf(t, err, config.ErrInvalid, name)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"k": 4, "solver": "highs-cli", "stop_above": 0}`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.K)
	require.Equal(t, "highs-cli", cfg.Solver)
	require.Zero(t, cfg.StopAbove)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
}
