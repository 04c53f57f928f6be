package gg

import "github.com/gogpu/swcanvas/internal/blend"

// blendModeFor maps the public CompositeOp enum to the internal
// Porter-Duff operator table.
func blendModeFor(op CompositeOp) blend.Mode {
	switch op {
	case CompositeDestinationOver:
		return blend.DestinationOver
	case CompositeSourceIn:
		return blend.SourceIn
	case CompositeDestinationIn:
		return blend.DestinationIn
	case CompositeSourceOut:
		return blend.SourceOut
	case CompositeDestinationOut:
		return blend.DestinationOut
	case CompositeSourceAtop:
		return blend.SourceAtop
	case CompositeDestinationAtop:
		return blend.DestinationAtop
	case CompositeXor:
		return blend.Xor
	case CompositeCopy:
		return blend.Copy
	case CompositeLighter:
		return blend.Lighter
	default:
		return blend.SourceOver
	}
}

// Composite blends src over dst under op, applying globalAlpha as an
// extra multiplier on the source's alpha before compositing. Both src
// and dst are straight alpha; the Porter-Duff math happens in
// premultiplied space and the result is returned straight.
func Composite(src, dst Color, op CompositeOp, globalAlpha float64) Color {
	if globalAlpha < 0 {
		globalAlpha = 0
	}
	if globalAlpha > 1 {
		globalAlpha = 1
	}
	if globalAlpha < 1 {
		src.A = lerpByte(0, src.A, globalAlpha)
	}

	ps := src.Premultiply()
	pd := dst.Premultiply()

	f := blend.Get(blendModeFor(op))
	r, g, b, a := f(ps.R, ps.G, ps.B, ps.A, pd.R, pd.G, pd.B, pd.A)

	return Color{R: r, G: g, B: b, A: a, Premultiplied: true}.Unpremultiply()
}

// compositeSourceOverStraight is the fast path used by Surface's
// blended-span fill: plain source-over with no globalAlpha or
// alternate operator, the common case for the fast shape ops.
func compositeSourceOverStraight(src, dst Color) Color {
	return Composite(src, dst, CompositeSourceOver, 1)
}
