package packing

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/packcolor/bfs"
	"github.com/katalvlaran/packcolor/converters"
	"github.com/katalvlaran/packcolor/core"
)

// Verify checks that c is a packing coloring of g: every vertex has a
// color >= 1, no unknown vertex is colored, and any two vertices of color
// i are more than i apart. The first problem found is returned; packing
// failures are *Violation values.
func Verify(g *core.Graph, c Coloring) error {
	if g == nil {
		return errors.New("packing: Verify: nil graph")
	}
	ids := g.Vertices()
	for _, id := range ids {
		col, ok := c[id]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUncolored, id)
		}
		if col < 1 {
			return fmt.Errorf("%w: %q has color %d", ErrBadColor, id, col)
		}
	}
	if len(c) != len(ids) {
		for id := range c {
			if !g.HasVertex(id) {
				return fmt.Errorf("%w: %q is not a vertex", ErrBadColor, id)
			}
		}
	}

	for i, class := range c.Classes() {
		color := i + 1
		if len(class) < 2 {
			continue
		}
		members := make(map[string]bool, len(class))
		for _, id := range class {
			members[id] = true
		}
		for _, u := range class {
			v, d, hit, err := nearestMember(g, u, color, members)
			if err != nil {
				return fmt.Errorf("packing: Verify: %w", err)
			}
			if hit {
				return violation(g, u, v, color, d)
			}
		}
	}

	return nil
}

// nearestMember searches from u up to depth limit and returns the first
// other class member reached, in BFS order.
func nearestMember(g *core.Graph, u string, limit int, members map[string]bool) (string, int, bool, error) {
	res, err := bfs.BFS(g, u, bfs.WithMaxDepth(limit))
	if err != nil {
		return "", 0, false, err
	}
	for _, id := range res.Order {
		if id != u && members[id] {
			return id, res.Depth[id], true, nil
		}
	}

	return "", 0, false, nil
}

// violation builds the Violation for u and v with a shortest witness path
// found on a dominikbraun copy of g.
func violation(g *core.Graph, u, v string, color, dist int) error {
	viol := &Violation{U: u, V: v, Color: color, Distance: dist}
	dg, err := converters.ToDominikbraun(g)
	if err != nil {
		return fmt.Errorf("packing: Verify: %w", err)
	}
	path, err := graph.ShortestPath(dg, u, v)
	if err != nil {
		return fmt.Errorf("packing: Verify: witness path %s to %s: %w", u, v, err)
	}
	viol.Path = path

	return viol
}
