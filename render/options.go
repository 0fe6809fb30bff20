package render

// Options control the canvas. Zero fields take the defaults below.
type Options struct {
	Width, Height int     // pixels; default 1200x800
	NodeRadius    float64 // default 16
	Margin        float64 // default 60
	// Updates is the number of Eades iterations; default 100.
	Updates int
	// Title overrides the default title.
	Title string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.NodeRadius <= 0 {
		o.NodeRadius = 16
	}
	if o.Margin <= 0 {
		o.Margin = 60
	}
	if o.Updates <= 0 {
		o.Updates = 100
	}

	return o
}
