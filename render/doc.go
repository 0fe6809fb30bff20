// Package render draws graphs and packing colorings.
//
// Layout places vertices with gonum's Eades spring embedder. PNG paints
// the result with fogleman/gg: nodes are filled from the tab20 palette
// at index color-1 and carry their color number, and the title states
// the chromatic number. DOT emits the same picture as Graphviz text via
// emicklei/dot.
package render
