package packing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/distance"
	"github.com/katalvlaran/packcolor/ilp"
)

// Result is the outcome of Solve.
type Result struct {
	Coloring Coloring
	// Chromatic is Coloring.NumColors(). It is χ_ρ(G) when Optimal
	// reports true and an upper bound otherwise.
	Chromatic int
	Status    ilp.Status
	Solution  *ilp.Solution
	// K is the color bound of the model that was solved.
	K int
	// Feasibility is set for a decision model built by WithFeasibility.
	// Its answer is Colorable; Chromatic is then only the largest color
	// of some K-coloring.
	Feasibility bool
	Stats       ilp.Stats
	Elapsed     time.Duration
}

// Optimal reports whether Chromatic is proven minimal. A feasibility
// model never proves that.
func (r *Result) Optimal() bool {
	return r != nil && !r.Feasibility && r.Status == ilp.Optimal && r.Coloring != nil
}

// Colorable reports whether a packing coloring with at most K colors was
// found.
func (r *Result) Colorable() bool {
	return r != nil && r.Coloring != nil && r.Chromatic <= r.K
}

// Solve computes a packing coloring of g with s: distances, formulation,
// backend, decode, then Verify. When the backend returns no assignment the
// error wraps ErrNoSolution and the Result still carries Status and
// Solution. A feasibility model proven infeasible is an answer, not an
// error: the Result has Status ilp.Infeasible and no Coloring. A decoded
// coloring that fails Verify is an error, never a
// result.
func Solve(ctx context.Context, g *core.Graph, s ilp.Solver, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, errors.New("packing: Solve: nil graph")
	}
	if s == nil {
		return nil, errors.New("packing: Solve: nil solver")
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	o := collect(opts)
	log := o.logger.With(zap.String("graph", g.Name()), zap.String("backend", s.Name()))
	start := time.Now()

	dopts := []distance.Option{distance.WithLogger(log)}
	if o.workers > 0 {
		dopts = append(dopts, distance.WithWorkers(o.workers))
	}
	dm, err := distance.Compute(ctx, g, dopts...)
	if err != nil {
		return nil, fmt.Errorf("packing: distances: %w", err)
	}

	f, err := Formulate(g, dm, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{K: f.K, Feasibility: f.Feasibility, Stats: f.Model.Stats()}
	log.Debug("model built",
		zap.Int("k", f.K),
		zap.Int("rows", res.Stats.Rows),
		zap.Int("cols", res.Stats.Cols),
		zap.Bool("feasibility", f.Feasibility),
	)

	sol, err := s.Solve(ctx, f.Model)
	res.Elapsed = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("packing: %s: %w", s.Name(), err)
	}
	res.Solution = sol
	res.Status = sol.Status
	if f.Feasibility && sol.Status == ilp.Optimal {
		res.Status = ilp.Feasible
	}
	if f.Feasibility && sol.Status == ilp.Infeasible {
		log.Info("not colorable", zap.Int("k", f.K), zap.Duration("elapsed", res.Elapsed))
		return res, nil
	}
	if !sol.HasValues() {
		return res, fmt.Errorf("%w (status %s)", ErrNoSolution, sol.Status)
	}

	coloring, err := f.Decode(sol)
	if err != nil {
		return res, err
	}
	if err = Verify(g, coloring); err != nil {
		return res, fmt.Errorf("packing: %s returned an invalid coloring: %w", s.Name(), err)
	}
	res.Coloring = coloring
	res.Chromatic = coloring.NumColors()

	log.Info("solved",
		zap.Int("chromatic", res.Chromatic),
		zap.Stringer("status", res.Status),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}
