package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/cache"
	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/metrics"
	"github.com/katalvlaran/packcolor/packing"
	"github.com/katalvlaran/packcolor/render"
)

// ErrThresholdExceeded ends a sweep whose chromatic number passed StopAbove.
var ErrThresholdExceeded = errors.New("runner: packing chromatic number exceeded threshold")

// Step is the outcome for one P.
type Step struct {
	Params  builder.Params
	Stem    string
	Skipped bool
	// SkipReason is the generator error for skipped steps.
	SkipReason error
	Cached     bool
	Chromatic  int
	Status     string
	Stats      ilp.Stats
	Elapsed    time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithCache reuses and stores results in s.
func WithCache(s *cache.Store) Option { return func(r *Runner) { r.cache = s } }

// WithMetrics records every step in m.
func WithMetrics(m *metrics.Recorder) Option { return func(r *Runner) { r.metrics = m } }

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner executes sweeps with one backend.
type Runner struct {
	cfg     Config
	solver  ilp.Solver
	paths   graphio.Paths
	cache   *cache.Store
	metrics *metrics.Recorder
	log     *zap.Logger
}

// New validates cfg and returns a Runner writing under paths.Dir.
func New(cfg Config, s ilp.Solver, paths graphio.Paths, opts ...Option) (*Runner, error) {
	if s == nil {
		return nil, errors.New("runner: nil solver")
	}
	if cfg.Bound == "" {
		cfg.Bound = BoundN
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, solver: s, paths: paths, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run sweeps P from PStart. It returns the steps completed so far with
// any error: ctx's error on cancellation, ErrThresholdExceeded when the
// threshold trips, or the first solve or I/O failure.
func (r *Runner) Run(ctx context.Context) ([]Step, error) {
	if err := r.paths.Ensure(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	var steps []Step
	for P := r.cfg.PStart; r.cfg.PEnd == 0 || P <= r.cfg.PEnd; P++ {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		step, g, coloring, err := r.step(ctx, builder.Params{P: P, B: r.cfg.B, K: r.cfg.K})
		if err != nil {
			r.count("error")
			return steps, err
		}
		steps = append(steps, *step)
		if step.Skipped {
			continue
		}

		if r.cfg.StopAbove > 0 && step.Chromatic > r.cfg.StopAbove {
			r.log.Warn("threshold exceeded, stopping",
				zap.String("graph", step.Stem),
				zap.Int("chromatic", step.Chromatic),
				zap.Int("stop_above", r.cfg.StopAbove),
			)
			if err = r.drawFinal(g, coloring, step); err != nil {
				return steps, err
			}
			return steps, fmt.Errorf("%w: %s has %d > %d", ErrThresholdExceeded, step.Stem, step.Chromatic, r.cfg.StopAbove)
		}
	}

	return steps, nil
}

func (r *Runner) step(ctx context.Context, p builder.Params) (*Step, *core.Graph, packing.Coloring, error) {
	stem := graphio.Stem(p, r.cfg.Topology)
	step := &Step{Params: p, Stem: stem}
	log := r.log.With(zap.String("graph", stem))

	g, err := builder.Generate(p, r.cfg.Topology)
	if err != nil {
		log.Debug("skipping parameters", zap.Error(err))
		step.Skipped, step.SkipReason = true, err
		r.count("skipped")
		return step, nil, nil, nil
	}
	if err = graphio.WriteFile(r.paths.Graph(stem), func(w io.Writer) error {
		return graphio.WriteAdjList(w, g)
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("runner: %s: %w", stem, err)
	}

	opts := []packing.Option{packing.WithLogger(log)}
	if r.cfg.Bound == BoundGreedy {
		opts = append(opts, packing.WithGreedyBound())
	}
	if r.cfg.Workers > 0 {
		opts = append(opts, packing.WithWorkers(r.cfg.Workers))
	}
	if r.cfg.LP {
		if err = r.writeLP(g, stem, opts); err != nil {
			return nil, nil, nil, err
		}
	}

	coloring, err := r.solve(ctx, g, step, opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("runner: %s: %w", stem, err)
	}
	log.Info("packing chromatic number",
		zap.Int("P", p.P), zap.Int("B", p.B), zap.Int("K", p.K),
		zap.Int("chromatic", step.Chromatic),
		zap.String("status", step.Status),
		zap.Bool("cached", step.Cached),
		zap.Duration("elapsed", step.Elapsed),
	)
	if step.Status != ilp.Optimal.String() {
		log.Warn("chromatic number is an upper bound only", zap.String("status", step.Status))
	}

	if err = r.writeArtifacts(g, coloring, step); err != nil {
		return nil, nil, nil, err
	}
	if r.metrics != nil {
		r.metrics.SetChromatic(stem, step.Chromatic)
		r.metrics.SetModel(stem, step.Stats.Rows, step.Stats.Cols)
	}
	if step.Cached {
		r.count("cached")
	} else {
		r.count(step.Status)
	}

	return step, g, coloring, nil
}

// solve fills step from the cache or the backend.
func (r *Runner) solve(ctx context.Context, g *core.Graph, step *Step, opts []packing.Option) (packing.Coloring, error) {
	var key string
	if r.cache != nil {
		key = cache.Key(cache.Fingerprint(g), r.solver.Name(), "bound="+string(r.cfg.Bound))
		e, ok, err := r.cache.Lookup(g, key)
		if err != nil {
			r.log.Warn("ignoring cache entry", zap.String("graph", step.Stem), zap.Error(err))
		}
		if ok {
			step.Cached = true
			step.Chromatic = e.Chromatic
			step.Status = e.Status
			step.Stats = e.Stats
			step.Elapsed = e.Elapsed
			return e.Coloring, nil
		}
	}

	res, err := packing.Solve(ctx, g, r.solver, opts...)
	if res != nil && r.metrics != nil {
		r.metrics.ObserveSolve(r.solver.Name(), res.Status.String(), res.Elapsed)
	}
	if err != nil {
		return nil, err
	}
	step.Chromatic = res.Chromatic
	step.Status = res.Status.String()
	step.Stats = res.Stats
	step.Elapsed = res.Elapsed

	// only proven optima are worth replaying
	if r.cache != nil && res.Optimal() {
		if err = r.cache.Put(key, &cache.Entry{
			Graph:     step.Stem,
			Backend:   r.solver.Name(),
			Status:    step.Status,
			Chromatic: res.Chromatic,
			Coloring:  res.Coloring,
			K:         res.K,
			Stats:     res.Stats,
			Elapsed:   res.Elapsed,
		}); err != nil {
			r.log.Warn("cache write failed", zap.String("graph", step.Stem), zap.Error(err))
		}
	}

	return res.Coloring, nil
}

func (r *Runner) writeLP(g *core.Graph, stem string, opts []packing.Option) error {
	f, err := packing.Formulate(g, nil, opts...)
	if err != nil {
		return fmt.Errorf("runner: %s: %w", stem, err)
	}

	return graphio.WriteFile(r.paths.LP(stem), f.Model.WriteLP)
}

func (r *Runner) writeArtifacts(g *core.Graph, c packing.Coloring, step *Step) error {
	stem := step.Stem
	if err := graphio.WriteFile(r.paths.Coloring(stem), func(w io.Writer) error {
		return graphio.WriteColoring(w, c, step.Chromatic)
	}); err != nil {
		return fmt.Errorf("runner: %s: %w", stem, err)
	}
	if r.cfg.Render {
		if err := render.SavePNG(r.paths.Image(stem), g, c, step.Chromatic, render.Options{}); err != nil {
			return fmt.Errorf("runner: %s: %w", stem, err)
		}
	}
	if r.cfg.DOT {
		if err := graphio.WriteFile(r.paths.DOT(stem), func(w io.Writer) error {
			return render.DOT(w, g, c, step.Chromatic)
		}); err != nil {
			return fmt.Errorf("runner: %s: %w", stem, err)
		}
	}

	return nil
}

// drawFinal renders the graph that tripped the threshold, colored and
// plain, regardless of the Render setting.
func (r *Runner) drawFinal(g *core.Graph, c packing.Coloring, step *Step) error {
	if !r.cfg.Render {
		if err := render.SavePNG(r.paths.Image(step.Stem), g, c, step.Chromatic, render.Options{}); err != nil {
			return fmt.Errorf("runner: %s: %w", step.Stem, err)
		}
	}
	if err := render.SavePNG(r.paths.Plain(step.Stem), g, nil, 0, render.Options{}); err != nil {
		return fmt.Errorf("runner: %s: %w", step.Stem, err)
	}

	return nil
}

func (r *Runner) count(status string) {
	if r.metrics != nil {
		r.metrics.CountRun(status)
	}
}
