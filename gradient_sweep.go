package gg

import "math"

// ConicGradient represents an angular color transition swept clockwise
// around a center point, starting at startAngle. Also known as a sweep
// gradient. The center is defined in user space.
//
// Example:
//
//	wheel := gg.NewConicGradient(50, 50, 0).
//	    AddColorStop(0, gg.ColorRed).
//	    AddColorStop(0.5, gg.ColorBlue).
//	    AddColorStop(1, gg.ColorRed)
type ConicGradient struct {
	Cx, Cy     float64
	StartAngle float64
	Stops      []ColorStop
}

// NewConicGradient creates a new conic gradient centered at (cx, cy) in
// user space, starting at startAngle radians.
func NewConicGradient(cx, cy, startAngle float64) *ConicGradient {
	return &ConicGradient{Cx: cx, Cy: cy, StartAngle: startAngle}
}

// AddColorStop adds a color stop at the specified offset ([0,1]).
// Returns the gradient for method chaining.
func (g *ConicGradient) AddColorStop(offset float64, c Color) *ConicGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// Sample implements Paint. t = ((atan2(py-cy, px-cx) - startAngle) mod
// 2π) / 2π.
func (g *ConicGradient) Sample(x, y float64, ctm Matrix) Color {
	center := ctm.TransformPoint(Point{X: g.Cx, Y: g.Cy})

	dx := x - center.X
	dy := y - center.Y
	if dx == 0 && dy == 0 {
		Logger().Debug("degenerate conic gradient sample: point at center")
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(dy, dx)
	t := math.Mod(angle-g.StartAngle, 2*math.Pi) / (2 * math.Pi)
	if t < 0 {
		t++
	}

	return colorAtOffset(g.Stops, t)
}
