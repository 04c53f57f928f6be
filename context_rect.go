package gg

// FillRect fills the axis-aligned rectangle (x, y, w, h) in user space
// with the fill paint, without disturbing the current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	rectPath := NewPath()
	if err := rectPath.Rect(x, y, w, h); err != nil {
		return err
	}
	polygons := fillOutline(rectPath, c.ctm)
	rasterizeFill(c.surface, c.clipStack.Top(), polygons, false, c.fillPaint, c.ctm, c.compositeOp, c.globalAlpha)
	return nil
}

// StrokeRect strokes the axis-aligned rectangle (x, y, w, h) in user
// space with the stroke paint, without disturbing the current path.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	rectPath := NewPath()
	if err := rectPath.Rect(x, y, w, h); err != nil {
		return err
	}
	outlines, widthAlpha := strokeOutline(rectPath, c.stroke, c.ctm)
	rasterizeFill(c.surface, c.clipStack.Top(), outlines, false, c.strokePaint, c.ctm, c.compositeOp, c.globalAlpha*widthAlpha)
	return nil
}

// ClearRect clears the axis-aligned rectangle (x, y, w, h) in user
// space to transparent black, subject to the current clip but
// ignoring the fill paint, global alpha, and composite operator — a
// clear always replaces, it never blends, and it never touches pixels
// outside the rectangle regardless of the active composite operator.
func (c *Context) ClearRect(x, y, w, h float64) error {
	rectPath := NewPath()
	if err := rectPath.Rect(x, y, w, h); err != nil {
		return err
	}
	polygons := fillOutline(rectPath, c.ctm)
	clearPolygons(c.surface, c.clipStack.Top(), polygons)
	return nil
}
