package gg

import "github.com/gogpu/swcanvas/internal/image"

// DrawImage draws the full extent of src at (x, y) in user space, at
// its native pixel size, nearest-neighbor sampled, and subject
// to the current transform, clip, global alpha, and composite
// operator.
func (c *Context) DrawImage(src *Surface, x, y float64) error {
	return c.DrawImageScaled(src, x, y, float64(src.Width()), float64(src.Height()))
}

// DrawImageScaled draws src into the destination rectangle
// (x, y, w, h) in user space, nearest-neighbor resampled to fit.
func (c *Context) DrawImageScaled(src *Surface, x, y, w, h float64) error {
	return c.DrawImageSub(src, 0, 0, float64(src.Width()), float64(src.Height()), x, y, w, h)
}

// DrawImageSub draws the (sx, sy, sw, sh) region of src into the
// destination rectangle (dx, dy, dw, dh) in user space, matching
// Canvas2D's nine-argument drawImage overload. A non-finite or
// non-positive source/destination extent is rejected with
// ErrNonFiniteInput / ErrInvalidArgumentCount.
func (c *Context) DrawImageSub(src *Surface, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if err := checkFinite(sx, sy, sw, sh, dx, dy, dw, dh); err != nil {
		return err
	}
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return ErrInvalidArgumentCount
	}

	buf := image.NewBuffer(src.Width(), src.Height())
	copy(buf.Pix, src.Data())

	// toSource maps a point in the destination rectangle's local
	// (user-space) coordinates to source-image pixel coordinates.
	scaleX := sw / dw
	scaleY := sh / dh
	toSource := NewMatrix(scaleX, 0, sx-dx*scaleX, 0, scaleY, sy-dy*scaleY)

	p := NewPath()
	if err := p.Rect(dx, dy, dw, dh); err != nil {
		return err
	}

	sampler := &imageSampler{buf: buf, toSource: toSource}
	polygons := fillOutline(p, c.ctm)
	rasterizeFill(c.surface, c.clipStack.Top(), polygons, false, sampler, c.ctm, c.compositeOp, c.globalAlpha)
	return nil
}

// imageSampler is a Paint that maps a device-space point back to
// source-image pixel coordinates via ctm's inverse composed with
// toSource (user space -> source pixels), then samples
// nearest-neighbor with no tiling: pixels outside the source rectangle
// are transparent.
type imageSampler struct {
	buf      *image.Buffer
	toSource Matrix
}

func (s *imageSampler) Sample(x, y float64, ctm Matrix) Color {
	inv, err := ctm.Invert()
	if err != nil {
		return Transparent
	}
	userPt := inv.TransformPoint(Point{X: x, Y: y})
	srcPt := s.toSource.TransformPoint(userPt)

	r, g, b, a := image.Sample(s.buf, srcPt.X, srcPt.Y, image.NoRepeat)
	return Color{R: r, G: g, B: b, A: a}
}
