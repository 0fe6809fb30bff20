package render

import (
	"errors"
	"io"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/packing"
)

// DOT writes g as an undirected Graphviz graph. With a coloring, nodes are
// filled like the PNG and labeled "id\ncolor".
func DOT(w io.Writer, g *core.Graph, coloring packing.Coloring, chromatic int) error {
	if g == nil {
		return errors.New("render: DOT: nil graph")
	}
	out := dot.NewGraph(dot.Undirected)
	out.Attr("label", Title(coloring, chromatic))
	out.Attr("labelloc", "t")

	nodes := make(map[string]dot.Node, g.VertexCount())
	for _, id := range g.Vertices() {
		n := out.Node(id).Attr("style", "filled")
		if coloring != nil {
			n = n.Attr("fillcolor", ColorHex(coloring[id])).
				Label(id + "\n" + strconv.Itoa(coloring[id]))
		} else {
			n = n.Attr("fillcolor", uncolored)
		}
		nodes[id] = n
	}
	for _, e := range g.Edges() {
		out.Edge(nodes[e.From], nodes[e.To])
	}

	_, err := io.WriteString(w, out.String())

	return err
}
