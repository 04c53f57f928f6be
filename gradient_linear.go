package gg

// LinearGradient represents a linear color transition between two points
// defined in user space. It implements Paint.
//
// Example:
//
//	gradient := gg.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, gg.ColorRed).
//	    AddColorStop(1, gg.ColorBlue)
//	dc.SetFillPaint(gradient)
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1), in user space.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop at the specified offset ([0,1]).
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// Sample implements Paint. p0, p1 are carried to device space through
// ctm before projection.
func (g *LinearGradient) Sample(x, y float64, ctm Matrix) Color {
	p0 := ctm.TransformPoint(Point{X: g.X0, Y: g.Y0})
	p1 := ctm.TransformPoint(Point{X: g.X1, Y: g.Y1})

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		Logger().Debug("degenerate linear gradient sample: zero-length axis")
		return firstStopColor(g.Stops)
	}

	px := x - p0.X
	py := y - p0.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t)
}
