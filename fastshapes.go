package gg

import "math"

// tryFastFillRect attempts a direct span-fill path for the common case
// of filling a single axis-aligned rectangle with a solid color under
// an axis-aligned transform, no active clip, and plain source-over
// compositing. Any other composite operator falls back to the general
// rasterizer, since several of them (source-in, source-out,
// destination-in, destination-atop, xor, copy) can alter destination
// pixels outside the rectangle — a sweep this direct span fill doesn't
// perform. It reports whether it handled the fill; false means the
// caller must fall back to the general rasterizer.
func (c *Context) tryFastFillRect() bool {
	rect, ok := c.path.asAxisAlignedRect()
	if !ok {
		return false
	}
	if !c.ctm.IsAxisAligned() {
		return false
	}
	solid, ok := c.fillPaint.(SolidPaint)
	if !ok {
		return false
	}
	if top := c.clipStack.Top(); top != nil && !top.IsNoClipping() {
		return false
	}
	if c.compositeOp != CompositeSourceOver {
		return false
	}

	p0 := c.ctm.TransformPoint(Point{X: rect.X, Y: rect.Y})
	p1 := c.ctm.TransformPoint(Point{X: rect.X + rect.W, Y: rect.Y + rect.H})
	x0, x1 := p0.X, p1.X
	y0, y1 := p0.Y, p1.Y
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	ix0, ix1 := int(math.Round(x0)), int(math.Round(x1))
	iy0, iy1 := int(math.Round(y0)), int(math.Round(y1))
	if ix0 >= ix1 || iy0 >= iy1 {
		return true // degenerate rect under this transform: nothing to paint
	}

	col := solid.Color
	if c.globalAlpha < 1 {
		col.A = lerpByte(0, col.A, c.globalAlpha)
	}

	for y := iy0; y < iy1; y++ {
		c.surface.FillSpanBlend(ix0, ix1, y, col)
	}
	return true
}

// tryFastFillCircle attempts a direct span-fill path for the common
// case of filling a single full-sweep Arc (the idiomatic way to draw
// a circle) with a solid color under a similarity transform (uniform
// scale, any rotation — a circle stays a circle under those), no
// active clip, and plain source-over compositing. It reports whether
// it handled the fill; false means the caller must fall back to the
// general rasterizer.
func (c *Context) tryFastFillCircle() bool {
	cx, cy, r, ok := c.path.asFullCircle()
	if !ok {
		return false
	}
	if !c.ctm.IsUniformScale() {
		return false
	}
	solid, ok := c.fillPaint.(SolidPaint)
	if !ok {
		return false
	}
	if top := c.clipStack.Top(); top != nil && !top.IsNoClipping() {
		return false
	}
	if c.compositeOp != CompositeSourceOver {
		return false
	}

	center := c.ctm.TransformPoint(Point{X: cx, Y: cy})
	sx, sy := c.ctm.Scales()
	radius := r * (sx + sy) / 2

	icx, icy := int(math.Round(center.X)), int(math.Round(center.Y))
	ir := int(math.Round(radius))
	if ir <= 0 {
		return true
	}

	col := solid.Color
	if c.globalAlpha < 1 {
		col.A = lerpByte(0, col.A, c.globalAlpha)
	}

	// Midpoint circle algorithm: walk the octant boundary and fill the
	// horizontal span between its mirrored left/right edge on every row
	// the boundary touches, rather than plotting outline pixels.
	x, y := ir, 0
	decision := 1 - ir
	for x >= y {
		c.fillCircleRowPair(icx, icy, x, y, col)
		c.fillCircleRowPair(icx, icy, y, x, col)
		y++
		if decision < 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
	return true
}

// fillCircleRowPair fills the horizontal span [cx-dx, cx+dx] on both
// row cy-dy and row cy+dy (the two rows symmetric octants share).
func (c *Context) fillCircleRowPair(cx, cy, dx, dy int, col Color) {
	x0, x1 := cx-dx, cx+dx+1
	top, bottom := cy-dy, cy+dy
	c.surface.FillSpanBlend(x0, x1, top, col)
	if bottom != top {
		c.surface.FillSpanBlend(x0, x1, bottom, col)
	}
}
