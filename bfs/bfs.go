package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/packcolor/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Neighbors are expanded in core natural order, so Order is reproducible.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}

// Levels is the allocation-light form of BFS used for all-pairs sweeps.
// adj is a dense adjacency list (vertex i's neighbors are adj[i]); dist
// must have len(adj) entries and is overwritten with hop distances from
// src, or -1 for vertices that are unreachable or farther than cutoff
// (cutoff <= 0 means no limit). queue is optional scratch space.
//
// ctx is polled once per dequeued vertex.
func Levels(ctx context.Context, adj [][]int, src, cutoff int, dist, queue []int) error {
	n := len(adj)
	if src < 0 || src >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}
	if len(dist) != n {
		return fmt.Errorf("%w: dist has %d entries, want %d", ErrOptionViolation, len(dist), n)
	}
	for i := range dist {
		dist[i] = -1
	}
	if cap(queue) < n {
		queue = make([]int, 0, n)
	}
	queue = append(queue[:0], src)
	dist[src] = 0

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		u := queue[head]
		if cutoff > 0 && dist[u] >= cutoff {
			continue
		}
		for _, v := range adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return nil
}

// Dense snapshots g as (ids, adj) where ids is g.Vertices() and adj[i]
// lists the indices of ids[i]'s neighbors in ascending order.
func Dense(g *core.Graph) ([]string, [][]int, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
		}
		row := make([]int, len(nbrs))
		for j, nbr := range nbrs {
			row[j] = index[nbr]
		}
		adj[i] = row
	}

	return ids, adj, nil
}
