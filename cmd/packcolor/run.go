package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/cache"
	"github.com/katalvlaran/packcolor/config"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/metrics"
	"github.com/katalvlaran/packcolor/runner"
)

type runFlags struct {
	solverFlags
	pStart, pEnd, b, k int
	topology           string
	stopAbove          int
	outDir, cacheDir   string
	metricsFile        string
	render, dot, lp    bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep P over the clique-chain family until a stop condition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}

			return a.run(cmd, cfg)
		},
	}
	d := config.Default()
	fs := cmd.Flags()
	f.solverFlags.register(fs)
	fs.IntVar(&f.pStart, "p-start", d.PStart, "first P")
	fs.IntVar(&f.pEnd, "p-end", d.PEnd, "last P (0 = until stopped)")
	fs.IntVar(&f.b, "b", d.B, "block size B")
	fs.IntVar(&f.k, "k", d.K, "clique size K")
	fs.StringVar(&f.topology, "topology", d.Topology, "path or cycle")
	fs.IntVar(&f.stopAbove, "stop-above", d.StopAbove, "stop once the chromatic number exceeds this (0 = never)")
	fs.StringVar(&f.outDir, "out-dir", d.OutDir, "artifact directory")
	fs.StringVar(&f.cacheDir, "cache-dir", d.CacheDir, "result cache directory (empty = no cache)")
	fs.StringVar(&f.metricsFile, "metrics-file", d.MetricsFile, "write Prometheus metrics here when done")
	fs.BoolVar(&f.render, "render", d.Render, "draw a PNG per graph")
	fs.BoolVar(&f.dot, "dot", d.DOT, "write a Graphviz file per graph")
	fs.BoolVar(&f.lp, "lp", d.LP, "write the LP model per graph")

	return cmd
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	f.solverFlags.apply(fs, cfg)
	overlay(fs, map[string]func(){
		"p-start":      func() { cfg.PStart = f.pStart },
		"p-end":        func() { cfg.PEnd = f.pEnd },
		"b":            func() { cfg.B = f.b },
		"k":            func() { cfg.K = f.k },
		"topology":     func() { cfg.Topology = f.topology },
		"stop-above":   func() { cfg.StopAbove = f.stopAbove },
		"out-dir":      func() { cfg.OutDir = f.outDir },
		"cache-dir":    func() { cfg.CacheDir = f.cacheDir },
		"metrics-file": func() { cfg.MetricsFile = f.metricsFile },
		"render":       func() { cfg.Render = f.render },
		"dot":          func() { cfg.DOT = f.dot },
		"lp":           func() { cfg.LP = f.lp },
	})
}

func (a *app) run(cmd *cobra.Command, cfg *config.Config) error {
	rc, err := runner.FromConfig(cfg)
	if err != nil {
		return err
	}
	s, err := newSolver(cfg, a.log)
	if err != nil {
		return err
	}

	rec := metrics.New()
	opts := []runner.Option{runner.WithLogger(a.log), runner.WithMetrics(rec)}
	if cfg.CacheDir != "" {
		store, cerr := cache.Open(cfg.CacheDir)
		if cerr != nil {
			return cerr
		}
		opts = append(opts, runner.WithCache(store))
	}
	r, err := runner.New(rc, s, graphio.Paths{Dir: cfg.OutDir}, opts...)
	if err != nil {
		return err
	}

	a.log.Info("sweep starting",
		zap.Int("p_start", cfg.PStart), zap.Int("p_end", cfg.PEnd),
		zap.Int("B", cfg.B), zap.Int("K", cfg.K),
		zap.String("topology", cfg.Topology), zap.String("solver", s.Name()),
	)
	steps, err := r.Run(cmd.Context())
	solved := 0
	for _, st := range steps {
		if !st.Skipped {
			solved++
		}
	}
	a.log.Info("sweep finished", zap.Int("steps", len(steps)), zap.Int("solved", solved), zap.Error(err))

	if cfg.MetricsFile != "" {
		if merr := rec.WriteTextfile(cfg.MetricsFile); merr != nil {
			return errors.Join(err, merr)
		}
	}

	return err
}
