//go:build highs

package solver

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lanl/highs"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/ilp"
)

// HighsName is the registry name of the in-process HiGHS backend.
const HighsName = "highs"

func init() {
	Register(HighsName, NewHighs)
}

// Highs solves models with libhighs through cgo. The cgo call cannot be
// interrupted: on context expiry Solve returns TimeLimit at once and the
// native solve finishes in the background.
type Highs struct {
	opts ilp.Options
}

// NewHighs is the Factory for the highs backend.
func NewHighs(opts ilp.Options) (ilp.Solver, error) {
	return &Highs{opts: opts}, nil
}

// Name implements ilp.Solver.
func (h *Highs) Name() string { return HighsName }

// Solve implements ilp.Solver.
func (h *Highs) Solve(ctx context.Context, m *ilp.Model) (*ilp.Solution, error) {
	start := time.Now()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", HighsName, err)
	}
	lp := toHighs(m)
	if h.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.TimeLimit)
		defer cancel()
	}

	type outcome struct {
		sol highs.Solution
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		s, err := lp.Solve()
		done <- outcome{sol: s, err: err}
	}()

	sol := &ilp.Solution{Backend: HighsName}
	select {
	case <-ctx.Done():
		sol.Status = ilp.TimeLimit
		sol.Message = ctx.Err().Error()
		sol.Runtime = time.Since(start)
		return sol, nil
	case res := <-done:
		sol.Runtime = time.Since(start)
		if res.err != nil {
			return nil, fmt.Errorf("%s: %v: %w", HighsName, res.err, ErrSolverFailed)
		}
		sol.Message = res.sol.Status.String()
		switch {
		case res.sol.Status == highs.Optimal:
			sol.Status = ilp.Optimal
		case strings.Contains(strings.ToLower(sol.Message), "infeasible"):
			sol.Status = ilp.Infeasible
		case strings.Contains(strings.ToLower(sol.Message), "time"):
			sol.Status = ilp.TimeLimit
		default:
			sol.Status = ilp.Unknown
		}
		if sol.Status != ilp.Infeasible && len(res.sol.ColumnPrimal) == len(m.Vars) {
			values := append([]float64(nil), res.sol.ColumnPrimal...)
			if m.Check(values, 1e-6) == nil {
				sol.Values = values
				sol.Objective = m.Eval(values)
			}
		}
		h.opts.Log().Debug("highs finished",
			zap.String("status", sol.Message),
			zap.Duration("runtime", sol.Runtime),
		)
		return sol, nil
	}
}

// toHighs converts m into the column-wise lanl/highs model. Maximization
// is expressed by negating costs.
func toHighs(m *ilp.Model) *highs.Model {
	n := len(m.Vars)
	lp := &highs.Model{
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
		VarTypes: make([]highs.VariableType, n),
	}
	for j, v := range m.Vars {
		lp.ColLower[j], lp.ColUpper[j] = v.Lower, v.Upper
		if v.Kind == ilp.Continuous {
			lp.VarTypes[j] = highs.ContinuousType
		} else {
			lp.VarTypes[j] = highs.IntegerType
		}
	}
	sign := 1.0
	if m.Sense == ilp.Maximize {
		sign = -1
	}
	for _, t := range m.Objective {
		lp.ColCosts[t.Var] += sign * t.Coef
	}
	for i, c := range m.Constraints {
		lo, hi := math.Inf(-1), math.Inf(1)
		switch c.Op {
		case ilp.LE:
			hi = c.RHS
		case ilp.GE:
			lo = c.RHS
		case ilp.EQ:
			lo, hi = c.RHS, c.RHS
		}
		lp.RowLower = append(lp.RowLower, lo)
		lp.RowUpper = append(lp.RowUpper, hi)
		for _, t := range c.Terms {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: i, Col: t.Var, Val: t.Coef})
		}
	}

	return lp
}
