package converters

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/packcolor/core"
)

// ErrGraphNil is returned for a nil input graph.
var ErrGraphNil = errors.New("converters: graph is nil")

// ToDominikbraun copies g into an undirected dominikbraun graph keyed by
// vertex ID. Vertices are added in natural order, edges in creation order.
func ToDominikbraun(g *core.Graph) (graph.Graph[string, string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := graph.New(graph.StringHash)
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("converters: vertex %q: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		if err := out.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("converters: edge %s: %w", e.ID, err)
		}
	}

	return out, nil
}
