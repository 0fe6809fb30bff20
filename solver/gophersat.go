package solver

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"sort"
	"time"

	sat "github.com/crillab/gophersat/solver"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/ilp"
)

// GophersatName is the registry name of the pure-Go backend.
const GophersatName = "gophersat"

// checkTol is the tolerance used to re-check decoded assignments.
const checkTol = 1e-9

func init() {
	Register(GophersatName, NewGophersat)
}

// Gophersat solves 0-1 models with the gophersat pseudo-boolean engine.
//
// Bounded integer columns are binary-expanded (x = lb + Σ 2^j b_j), every
// row becomes one or two ">=" PB constraints with positive weights, and a
// minimization objective becomes the solver's cost function. Continuous
// columns and fractional coefficients are rejected with
// ErrUnsupportedModel.
type Gophersat struct {
	opts ilp.Options
}

// NewGophersat is the Factory for the gophersat backend.
func NewGophersat(opts ilp.Options) (ilp.Solver, error) {
	return &Gophersat{opts: opts}, nil
}

// Name implements ilp.Solver.
func (g *Gophersat) Name() string { return GophersatName }

// Solve implements ilp.Solver.
func (g *Gophersat) Solve(ctx context.Context, m *ilp.Model) (*ilp.Solution, error) {
	start := time.Now()
	log := g.opts.Log().With(zap.String("backend", GophersatName), zap.String("model", m.Name))
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", GophersatName, err)
	}
	enc, err := encodePB(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", GophersatName, err)
	}
	if g.opts.Threads > 1 {
		log.Debug("gophersat is single-threaded; ignoring thread count", zap.Int("threads", g.opts.Threads))
	}
	log.Debug("pseudo-boolean encoding",
		zap.Int("pb_vars", enc.nbVars),
		zap.Int("pb_constraints", len(enc.constrs)),
		zap.Int("cost_terms", len(enc.costLits)),
	)

	sol := &ilp.Solution{Backend: GophersatName}
	if enc.infeasible != "" {
		sol.Status = ilp.Infeasible
		sol.Message = enc.infeasible
		sol.Runtime = time.Since(start)
		return sol, nil
	}

	if g.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.TimeLimit)
		defer cancel()
	}

	var (
		last        *sat.Result
		interrupted bool
	)
	if len(enc.constrs) == 0 {
		// No constraints: the cheapest assignment sets every cost literal false.
		last = &sat.Result{Status: sat.Sat, Model: enc.cheapest()}
	} else {
		var finished bool
		last, finished = optimize(ctx, enc)
		interrupted = !finished
	}
	sol.Runtime = time.Since(start)

	switch {
	case last != nil && last.Status == sat.Unsat:
		sol.Status = ilp.Infeasible
		sol.Message = "UNSATISFIABLE"
		return sol, nil
	case last == nil:
		sol.Status = ilp.Unknown
		if interrupted {
			sol.Status = ilp.TimeLimit
		}
		sol.Message = "no model found"
		return sol, nil
	}

	values := enc.decode(last.Model)
	if err := m.Check(values, checkTol); err != nil {
		return nil, fmt.Errorf("%s: decoded assignment: %v: %w", GophersatName, err, ErrSolverFailed)
	}
	sol.Values = values
	sol.Objective = m.Eval(values)
	sol.Status = ilp.Optimal
	sol.Message = "OPTIMUM FOUND"
	if interrupted {
		sol.Status = ilp.TimeLimit
		sol.Message = "interrupted with incumbent"
	}
	log.Debug("gophersat finished",
		zap.Stringer("status", sol.Status),
		zap.Float64("objective", sol.Objective),
		zap.Duration("runtime", sol.Runtime),
	)

	return sol, nil
}

// optimize runs the gophersat search and returns the last result it
// reported. finished is false when ctx expired first.
//
// gophersat has no way to stop a search, so on ctx expiry the search
// goroutine is abandoned: it keeps running until it completes, with its
// remaining results drained and discarded.
func optimize(ctx context.Context, enc *pbEncoding) (last *sat.Result, finished bool) {
	pb := sat.ParsePBConstrs(enc.constrs)
	if len(enc.costLits) > 0 {
		pb.SetCostFunc(enc.costLits, enc.costW)
	}
	s := sat.New(pb)

	results := make(chan sat.Result)
	go s.Optimal(results, nil)
	for {
		select {
		case res, ok := <-results:
			if !ok {
				return last, true
			}
			last = &res
		case <-ctx.Done():
			go func() {
				for range results {
				}
			}()
			return last, false
		}
	}
}

// pbColumn maps one ilp column onto PB variables first..first+bits-1.
type pbColumn struct {
	lower int
	first int // 1-based PB variable
	bits  int
}

type pbEncoding struct {
	cols     []pbColumn
	nbVars   int
	constrs  []sat.PBConstr
	costLits []sat.Lit
	costW    []int
	// infeasible is set when a row is unsatisfiable on its own.
	infeasible string
}

func encodePB(m *ilp.Model) (*pbEncoding, error) {
	enc := &pbEncoding{cols: make([]pbColumn, len(m.Vars))}

	for i, v := range m.Vars {
		if v.Kind == ilp.Continuous {
			return nil, fmt.Errorf("%w: continuous column %s", ErrUnsupportedModel, v.Name)
		}
		lo, okLo := integral(math.Ceil(v.Lower))
		hi, okHi := integral(math.Floor(v.Upper))
		if !okLo || !okHi || lo > hi {
			return nil, fmt.Errorf("%w: column %s bounds [%g, %g]", ErrUnsupportedModel, v.Name, v.Lower, v.Upper)
		}
		span := hi - lo
		col := pbColumn{lower: lo, first: enc.nbVars + 1, bits: bits.Len(uint(span))}
		enc.cols[i] = col
		enc.nbVars += col.bits

		// Σ 2^j b_j <= span unless every bit pattern is in range.
		if col.bits > 0 && span != 1<<col.bits-1 {
			row := make(map[int]int, col.bits)
			for j := 0; j < col.bits; j++ {
				row[col.first+j] = -(1 << j)
			}
			enc.addGE(row, -span, v.Name+" domain")
		}
	}

	for _, c := range m.Constraints {
		row, constant, err := enc.expand(m, c.Terms)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", c.Name, err)
		}
		rhs, ok := integral(c.RHS)
		if !ok {
			return nil, fmt.Errorf("%w: row %s rhs %g", ErrUnsupportedModel, c.Name, c.RHS)
		}
		rhs -= constant
		if c.Op == ilp.GE || c.Op == ilp.EQ {
			enc.addGE(row, rhs, c.Name)
		}
		if c.Op == ilp.LE || c.Op == ilp.EQ {
			neg := make(map[int]int, len(row))
			for v, w := range row {
				neg[v] = -w
			}
			enc.addGE(neg, -rhs, c.Name)
		}
	}

	row, _, err := enc.expand(m, m.Objective)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	for _, v := range sortedKeys(row) {
		w := row[v]
		if m.Sense == ilp.Maximize {
			w = -w
		}
		switch {
		case w > 0:
			enc.costLits = append(enc.costLits, sat.IntToLit(int32(v)))
			enc.costW = append(enc.costW, w)
		case w < 0:
			// w*b = w + |w|*¬b
			enc.costLits = append(enc.costLits, sat.IntToLit(int32(-v)))
			enc.costW = append(enc.costW, -w)
		}
	}

	return enc, nil
}

// expand rewrites Σ a_i x_i as Σ w_v b_v + constant over PB variables.
func (e *pbEncoding) expand(m *ilp.Model, terms []ilp.Term) (map[int]int, int, error) {
	row := make(map[int]int)
	constant := 0
	for _, t := range terms {
		a, ok := integral(t.Coef)
		if !ok {
			return nil, 0, fmt.Errorf("%w: coefficient %g on %s", ErrUnsupportedModel, t.Coef, m.Vars[t.Var].Name)
		}
		col := e.cols[t.Var]
		constant += a * col.lower
		for j := 0; j < col.bits; j++ {
			row[col.first+j] += a << j
		}
	}

	return row, constant, nil
}

// addGE appends Σ w_v b_v >= rhs after flipping negative weights onto
// negated literals. Trivial rows are dropped and unsatisfiable ones mark
// the encoding infeasible.
func (e *pbEncoding) addGE(row map[int]int, rhs int, name string) {
	var (
		lits    []int
		weights []int
		total   int
	)
	for _, v := range sortedKeys(row) {
		w := row[v]
		switch {
		case w > 0:
			lits = append(lits, v)
			weights = append(weights, w)
		case w < 0:
			lits = append(lits, -v)
			weights = append(weights, -w)
			rhs -= w
		default:
			continue
		}
		total += weights[len(weights)-1]
	}
	if rhs <= 0 {
		return
	}
	if total < rhs {
		if e.infeasible == "" {
			e.infeasible = fmt.Sprintf("row %s cannot be satisfied", name)
		}
		return
	}
	e.constrs = append(e.constrs, sat.GtEq(lits, weights, rhs))
}

// cheapest is the optimal model when there are no constraints.
func (e *pbEncoding) cheapest() []bool {
	model := make([]bool, e.nbVars)
	for _, l := range e.costLits {
		if v := l.Int(); v < 0 {
			model[-v-1] = true
		}
	}

	return model
}

func (e *pbEncoding) decode(model []bool) []float64 {
	out := make([]float64, len(e.cols))
	for i, c := range e.cols {
		v := c.lower
		for j := 0; j < c.bits; j++ {
			if idx := c.first + j - 1; idx < len(model) && model[idx] {
				v += 1 << j
			}
		}
		out[i] = float64(v)
	}

	return out
}

// integral converts f to int when it is a whole number of safe size.
func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<40 {
		return 0, false
	}

	return int(f), true
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
