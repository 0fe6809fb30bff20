package distance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/bfs"
	"github.com/katalvlaran/packcolor/core"
)

// Unreachable marks a pair with no path (or one longer than the cutoff).
const Unreachable = -1

// ErrGraphNil is returned when Compute receives a nil graph.
var ErrGraphNil = errors.New("distance: graph is nil")

// Matrix holds hop distances between every ordered pair of vertices.
type Matrix struct {
	ids    []string
	index  map[string]int
	d      []int // row-major n×n
	cutoff int
}

// Pair is an unordered vertex pair I < J at hop distance Dist.
type Pair struct {
	I, J int
	Dist int
}

// Compute returns the all-pairs distance matrix of g.
// ctx cancellation aborts outstanding searches and is returned as-is.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	ids, adj, err := bfs.Dense(g)
	if err != nil {
		return nil, fmt.Errorf("distance: snapshot: %w", err)
	}
	n := len(ids)
	m := &Matrix{
		ids:    ids,
		index:  make(map[string]int, n),
		d:      make([]int, n*n),
		cutoff: o.cutoff,
	}
	for i, id := range ids {
		m.index[id] = i
	}

	p := pool.New().WithMaxGoroutines(o.workers).WithErrors()
	for src := 0; src < n; src++ {
		src := src
		p.Go(func() error {
			return bfs.Levels(ctx, adj, src, o.cutoff, m.d[src*n:(src+1)*n], nil)
		})
	}
	if err := p.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("distance: %w", err)
	}

	o.logger.Debug("distance matrix computed",
		zap.String("graph", g.Name()),
		zap.Int("vertices", n),
		zap.Int("workers", o.workers),
		zap.Int("cutoff", o.cutoff),
		zap.Duration("elapsed", time.Since(start)),
	)

	return m, nil
}

// N returns the number of vertices.
func (m *Matrix) N() int { return len(m.ids) }

// IDs returns a copy of the vertex IDs in row order.
func (m *Matrix) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// Cutoff returns the search cutoff the matrix was computed with (0 = none).
func (m *Matrix) Cutoff() int { return m.cutoff }

// Index returns the row of vertex id.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At returns the hop distance between rows i and j, or Unreachable.
// Panics on out-of-range indices like a slice access.
func (m *Matrix) At(i, j int) int {
	n := len(m.ids)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("distance: At(%d,%d) out of range [0,%d)", i, j, n))
	}

	return m.d[i*n+j]
}

// Between returns the distance between two vertex IDs. ok is false if
// either vertex is unknown or the pair is unreachable.
func (m *Matrix) Between(u, v string) (int, bool) {
	i, ok := m.index[u]
	if !ok {
		return Unreachable, false
	}
	j, ok := m.index[v]
	if !ok {
		return Unreachable, false
	}
	d := m.d[i*len(m.ids)+j]

	return d, d != Unreachable
}

// Diameter returns the largest finite distance and whether every pair is
// reachable (i.e. the graph is connected within the cutoff).
func (m *Matrix) Diameter() (int, bool) {
	diam, connected := 0, true
	for _, d := range m.d {
		switch {
		case d == Unreachable:
			connected = false
		case d > diam:
			diam = d
		}
	}

	return diam, connected
}

// PairsWithin lists every pair i < j with 1 <= At(i,j) <= d, ordered by
// i then j.
func (m *Matrix) PairsWithin(d int) []Pair {
	n := len(m.ids)
	var out []Pair
	for i := 0; i < n; i++ {
		row := m.d[i*n : (i+1)*n]
		for j := i + 1; j < n; j++ {
			if dist := row[j]; dist >= 1 && dist <= d {
				out = append(out, Pair{I: i, J: j, Dist: dist})
			}
		}
	}

	return out
}
