package packing

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/distance"
	"github.com/katalvlaran/packcolor/ilp"
)

// Formulation is a packing-coloring model together with the column layout
// needed to read an assignment back.
type Formulation struct {
	Model *ilp.Model
	// K is the number of colors the model allows.
	K int
	// IDs are the vertex IDs in row order.
	IDs []string
	// X[v][i-1] is the column of x_v_i.
	X [][]int
	// Z is the column of z, or -1 for a feasibility model.
	Z int
	// Feasibility is true for WithFeasibility models.
	Feasibility bool
}

// Formulate builds the packing-coloring ILP of g. dm supplies the hop
// distances; nil computes them here. A dm computed with a cutoff must
// cover the color bound, since pairs beyond the cutoff are taken as far.
func Formulate(g *core.Graph, dm *distance.Matrix, opts ...Option) (*Formulation, error) {
	if g == nil {
		return nil, errors.New("packing: Formulate: nil graph")
	}
	o := collect(opts)
	if dm == nil {
		var err error
		if dm, err = distance.Compute(context.Background(), g); err != nil {
			return nil, fmt.Errorf("packing: Formulate: %w", err)
		}
	}
	n := dm.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	k := colorBound(dm, o)
	if c := dm.Cutoff(); c > 0 && c < k {
		return nil, fmt.Errorf("packing: Formulate: distance cutoff %d is below color bound %d", c, k)
	}

	name := g.Name()
	if name == "" {
		name = "packing"
	}
	f := &Formulation{
		Model:       ilp.NewModel(name, ilp.Minimize),
		K:           k,
		IDs:         dm.IDs(),
		X:           make([][]int, n),
		Z:           -1,
		Feasibility: o.feasibility > 0,
	}
	m := f.Model

	for v := 0; v < n; v++ {
		f.X[v] = make([]int, k)
		for i := 1; i <= k; i++ {
			col, err := m.AddBinary(fmt.Sprintf("x_%d_%d", v, i))
			if err != nil {
				return nil, err
			}
			f.X[v][i-1] = col
		}
	}
	if !f.Feasibility {
		z, err := m.AddInteger("z", 1, k)
		if err != nil {
			return nil, err
		}
		f.Z = z
		if err = m.SetObjective([]ilp.Term{{Var: z, Coef: 1}}, 0); err != nil {
			return nil, err
		}
	}

	for v := 0; v < n; v++ {
		terms := make([]ilp.Term, k)
		for i := 1; i <= k; i++ {
			terms[i-1] = ilp.Term{Var: f.X[v][i-1], Coef: 1}
		}
		if err := m.AddConstraint(fmt.Sprintf("OneColor_%d", v), terms, ilp.EQ, 1); err != nil {
			return nil, err
		}
	}

	for _, p := range dm.PairsWithin(k) {
		for i := p.Dist; i <= k; i++ {
			terms := []ilp.Term{
				{Var: f.X[p.I][i-1], Coef: 1},
				{Var: f.X[p.J][i-1], Coef: 1},
			}
			if err := m.AddConstraint(fmt.Sprintf("Pack_%d_%d_color_%d", p.I, p.J, i), terms, ilp.LE, 1); err != nil {
				return nil, err
			}
		}
	}

	if !f.Feasibility {
		for v := 0; v < n; v++ {
			for i := 1; i <= k; i++ {
				terms := []ilp.Term{
					{Var: f.X[v][i-1], Coef: float64(i)},
					{Var: f.Z, Coef: -1},
				}
				if err := m.AddConstraint(fmt.Sprintf("MaxColor_%d_%d", v, i), terms, ilp.LE, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	return f, nil
}

func colorBound(dm *distance.Matrix, o options) int {
	n := dm.N()
	k := n
	switch {
	case o.feasibility > 0:
		k = o.feasibility
	case o.bound > 0:
		k = o.bound
	case o.greedy:
		k = Greedy(dm).NumColors()
	}
	if k > n {
		k = n
	}

	return k
}

// Decode reads the coloring out of sol: vertex v takes the color i whose
// x_v_i exceeds 0.5. It fails with ErrNoSolution when sol carries no
// assignment and with ErrUncolored when a vertex has no selected color.
func (f *Formulation) Decode(sol *ilp.Solution) (Coloring, error) {
	if !sol.HasValues() {
		return nil, ErrNoSolution
	}
	out := make(Coloring, len(f.IDs))
	for v, id := range f.IDs {
		for i := 1; i <= f.K; i++ {
			if sol.Value(f.X[v][i-1]) > 0.5 {
				out[id] = i
				break
			}
		}
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUncolored, id)
		}
	}

	return out, nil
}
