package render

// tab20 is matplotlib's qualitative 20-color map.
var tab20 = [...]string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

const uncolored = "#d3d3d3" // lightgray

// ColorHex returns the fill for color c (1-based), wrapping after 20.
// Colors < 1 get the uncolored gray.
func ColorHex(c int) string {
	if c < 1 {
		return uncolored
	}

	return tab20[(c-1)%len(tab20)]
}
