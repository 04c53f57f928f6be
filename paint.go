package gg

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join, degrading to bevel
	// past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// CompositeOp selects the Porter-Duff operator used to combine source
// pixels with the destination.
type CompositeOp int

const (
	CompositeSourceOver CompositeOp = iota
	CompositeDestinationOver
	CompositeSourceIn
	CompositeDestinationIn
	CompositeSourceOut
	CompositeDestinationOut
	CompositeSourceAtop
	CompositeDestinationAtop
	CompositeXor
	CompositeCopy
	CompositeLighter
)

// Paint is a source of per-pixel color values given device coordinates
// and the transform in effect for the draw call being rasterized. Every
// paint kind (solid, linear/radial/conic gradient, pattern)
// implements this single method.
type Paint interface {
	// Sample returns the color at device-space point (x, y). ctm is
	// the current transform of the draw call that samples this paint
	// (gradients and patterns are defined in user space and
	// project device coordinates back through ctm's inverse).
	Sample(x, y float64, ctm Matrix) Color
}

// SolidPaint is a paint source that returns the same color everywhere.
type SolidPaint struct {
	Color Color
}

// NewSolidPaint creates a constant-color paint.
func NewSolidPaint(c Color) SolidPaint {
	return SolidPaint{Color: c}
}

// Sample implements Paint.
func (p SolidPaint) Sample(_, _ float64, _ Matrix) Color {
	return p.Color
}
