package render

import (
	"math"

	"gonum.org/v1/gonum/graph/layout"

	"github.com/katalvlaran/packcolor/converters"
	"github.com/katalvlaran/packcolor/core"
)

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Layout runs the Eades spring embedder on g and scales the result into
// the canvas described by opts, keeping Margin pixels free on each side.
func Layout(g *core.Graph, opts Options) (map[string]Point, error) {
	o := opts.withDefaults()
	gn, err := converters.ToGonum(g)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Point, len(gn.IDs))
	if len(gn.IDs) == 0 {
		return out, nil
	}

	eades := layout.EadesR2{Updates: o.Updates, Repulsion: 1, Rate: 0.05, Theta: 0.2}
	opt := layout.NewOptimizerR2(gn.Graph, eades.Update)
	for opt.Update() {
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	raw := make([]Point, len(gn.IDs))
	for i := range gn.IDs {
		v := opt.Coord2(int64(i))
		raw[i] = Point{X: v.X, Y: v.Y}
		if math.IsNaN(v.X) || math.IsNaN(v.Y) {
			continue
		}
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	w := float64(o.Width) - 2*o.Margin
	h := float64(o.Height) - 2*o.Margin
	for i, id := range gn.IDs {
		out[id] = Point{
			X: o.Margin + scale(raw[i].X, minX, maxX)*w,
			Y: o.Margin + scale(raw[i].Y, minY, maxY)*h,
		}
	}

	return out, nil
}

// scale maps v from [lo, hi] to [0, 1]; a degenerate range maps to 0.5.
func scale(v, lo, hi float64) float64 {
	if math.IsNaN(v) || !(hi-lo > 1e-12) {
		return 0.5
	}

	return (v - lo) / (hi - lo)
}
