package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/packing"
)

// Title returns the image title for a coloring with the given chromatic
// number, or the plain-graph title when coloring is nil.
func Title(coloring packing.Coloring, chromatic int) string {
	if coloring == nil {
		return "Graph Without Colors"
	}

	return fmt.Sprintf("Packing Coloring Solution (Chromatic Number: %d)", chromatic)
}

// Draw paints g onto a new gg context. With a coloring, nodes are filled
// by color and labeled with their color number; without one they are
// gray and labeled with their vertex ID.
func Draw(g *core.Graph, coloring packing.Coloring, chromatic int, opts Options) (*gg.Context, error) {
	o := opts.withDefaults()
	pos, err := Layout(g, o)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	for _, id := range g.Vertices() {
		p := pos[id]
		label := id
		fill := uncolored
		if coloring != nil {
			fill = ColorHex(coloring[id])
			label = strconv.Itoa(coloring[id])
		}
		dc.SetHexColor(fill)
		dc.DrawCircle(p.X, p.Y, o.NodeRadius)
		dc.Fill()
		if coloring != nil {
			dc.SetRGB(1, 1, 1)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawStringAnchored(label, p.X, p.Y, 0.5, 0.35)
	}

	title := o.Title
	if title == "" {
		title = Title(coloring, chromatic)
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(o.Width)/2, o.Margin/2, 0.5, 0.5)

	return dc, nil
}

// PNG encodes the drawing of g to w.
func PNG(w io.Writer, g *core.Graph, coloring packing.Coloring, chromatic int, opts Options) error {
	dc, err := Draw(g, coloring, chromatic, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the drawing of g to path.
func SavePNG(path string, g *core.Graph, coloring packing.Coloring, chromatic int, opts Options) error {
	dc, err := Draw(g, coloring, chromatic, opts)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}
