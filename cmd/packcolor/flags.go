package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/config"
	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/ilp"
	"github.com/katalvlaran/packcolor/packing"
	"github.com/katalvlaran/packcolor/solver"
)

// overlay runs set[name] for every flag the user actually passed, so
// file configuration only loses to explicit flags.
func overlay(fs *pflag.FlagSet, set map[string]func()) {
	fs.Visit(func(f *pflag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
}

type solverFlags struct {
	name      string
	timeLimit time.Duration
	threads   int
	binary    string
	bound     string
	workers   int
}

func (s *solverFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&s.name, "solver", d.Solver, fmt.Sprintf("backend, one of %v", solver.Available()))
	fs.DurationVar(&s.timeLimit, "time-limit", 0, "per-graph solver time limit (0 = none)")
	fs.IntVar(&s.threads, "threads", d.Threads, "solver threads (0 = backend default)")
	fs.StringVar(&s.binary, "solver-binary", d.SolverBinary, "executable for external backends")
	fs.StringVar(&s.bound, "bound", d.Bound, `color bound: "n" (|V|) or "greedy"`)
	fs.IntVar(&s.workers, "workers", d.Workers, "distance workers (0 = GOMAXPROCS)")
}

func (s *solverFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	overlay(fs, map[string]func(){
		"solver":        func() { cfg.Solver = s.name },
		"time-limit":    func() { cfg.TimeLimit = s.timeLimit.String() },
		"threads":       func() { cfg.Threads = s.threads },
		"solver-binary": func() { cfg.SolverBinary = s.binary },
		"bound":         func() { cfg.Bound = s.bound },
		"workers":       func() { cfg.Workers = s.workers },
	})
}

// newSolver builds the configured backend.
func newSolver(cfg *config.Config, log *zap.Logger) (ilp.Solver, error) {
	limit, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	return solver.New(cfg.Solver, ilp.Options{
		TimeLimit: limit,
		Threads:   cfg.Threads,
		Binary:    cfg.SolverBinary,
		Verbose:   log.Core().Enabled(zapcore.DebugLevel),
		Logger:    log,
	})
}

// packingOptions maps the configuration onto packing options.
func packingOptions(cfg *config.Config, log *zap.Logger) ([]packing.Option, error) {
	opts := []packing.Option{packing.WithLogger(log)}
	switch cfg.Bound {
	case "n":
	case "greedy":
		opts = append(opts, packing.WithGreedyBound())
	default:
		return nil, fmt.Errorf("unknown bound %q", cfg.Bound)
	}
	if cfg.Workers > 0 {
		opts = append(opts, packing.WithWorkers(cfg.Workers))
	}

	return opts, nil
}

// graphFlags select one graph: a clique chain from P/B/K, a named family
// or an adjlist file.
type graphFlags struct {
	p, b, k  int
	topology string
	adjlist  string
	family   string
	n, m     int
	prob     float64
	seed     int64
	ids      string
}

func (g *graphFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.IntVar(&g.p, "P", 0, "path length P of the clique chain")
	fs.IntVar(&g.b, "B", d.B, "block size B")
	fs.IntVar(&g.k, "K", d.K, "clique size K")
	fs.StringVar(&g.topology, "topology", d.Topology, "path or cycle")
	fs.StringVar(&g.adjlist, "adjlist", "", "read the graph from an adjlist file instead")
	fs.StringVar(&g.family, "family", "", "generate a named family instead: "+familyNames())
	fs.IntVar(&g.n, "n", 0, "family size (rows for grid, left side for bipartite)")
	fs.IntVar(&g.m, "m", 0, "second family size (columns for grid, right side for bipartite)")
	fs.Float64Var(&g.prob, "prob", 0.5, "edge probability for the random family")
	fs.Int64Var(&g.seed, "seed", 1, "seed for the random family")
	fs.StringVar(&g.ids, "ids", "decimal", "vertex IDs of generated graphs: decimal, excel or prefix:<p>")
}

func familyNames() string {
	names := make([]string, 0, len(builder.Families()))
	for _, f := range builder.Families() {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}

// load returns the graph and its file stem.
func (g *graphFlags) load() (*core.Graph, string, error) {
	sources := 0
	for _, set := range []bool{g.adjlist != "", g.p != 0, g.family != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources > 1:
		return nil, "", fmt.Errorf("--P, --family and --adjlist are mutually exclusive")
	case sources == 0:
		return nil, "", fmt.Errorf("one of --P, --family or --adjlist is required")
	}

	if g.adjlist != "" {
		f, err := os.Open(g.adjlist)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		gr, err := graphio.ReadAdjList(f)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", g.adjlist, err)
		}

		return gr, stemOf(g.adjlist), nil
	}
	idOpt, err := builder.ParseIDScheme(g.ids)
	if err != nil {
		return nil, "", err
	}
	if g.family != "" {
		return g.loadFamily(idOpt)
	}
	t, err := builder.ParseTopology(g.topology)
	if err != nil {
		return nil, "", err
	}
	p := builder.Params{P: g.p, B: g.b, K: g.k}
	gr, err := builder.Generate(p, t, idOpt)
	if err != nil {
		return nil, "", err
	}

	return gr, graphio.Stem(p, t), nil
}

func (g *graphFlags) loadFamily(idOpt builder.BuilderOption) (*core.Graph, string, error) {
	fam, err := builder.ParseFamily(g.family)
	if err != nil {
		return nil, "", err
	}
	spec := builder.FamilySpec{Family: fam, N: g.n, M: g.m, Prob: g.prob, Seed: g.seed}
	cons, bopts, err := spec.Constructor()
	if err != nil {
		return nil, "", err
	}
	stem := spec.String()
	gr, err := builder.BuildGraph([]core.GraphOption{core.WithName(stem)}, append(bopts, idOpt), cons)
	if err != nil {
		return nil, "", err
	}

	return gr, stem, nil
}

// stemOf strips directory and extension: "graphs/P6_♦2_K5.txt" → "P6_♦2_K5".
func stemOf(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
