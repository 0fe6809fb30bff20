package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/packcolor/core"
)

// Gonum is a gonum snapshot of a core.Graph. Node i is IDs[i], the
// vertex at row i of the natural order.
type Gonum struct {
	Graph *simple.UndirectedGraph
	IDs   []string
	Index map[string]int64
}

// ToGonum copies g into a gonum simple.UndirectedGraph.
func ToGonum(g *core.Graph) (*Gonum, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	out := &Gonum{
		Graph: simple.NewUndirectedGraph(),
		IDs:   ids,
		Index: make(map[string]int64, len(ids)),
	}
	for i, id := range ids {
		out.Index[id] = int64(i)
		out.Graph.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u, v := out.Index[e.From], out.Index[e.To]
		out.Graph.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return out, nil
}
