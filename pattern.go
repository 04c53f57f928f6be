package gg

import intimage "github.com/gogpu/swcanvas/internal/image"

// PatternRepeat selects how a Pattern tiles outside its source
// image's bounds, matching HTML5 canvas's createPattern modes.
type PatternRepeat int

const (
	PatternRepeatBoth PatternRepeat = iota
	PatternRepeatX
	PatternRepeatY
	PatternNoRepeat
)

func (r PatternRepeat) toInternal() intimage.Repeat {
	switch r {
	case PatternRepeatX:
		return intimage.RepeatX
	case PatternRepeatY:
		return intimage.RepeatY
	case PatternNoRepeat:
		return intimage.NoRepeat
	default:
		return intimage.RepeatBoth
	}
}

// Pattern is an image-based Paint: it samples a source surface
// nearest-neighbor through an inverse transform from device space
// back to image-pixel space, tiling per Repeat.
type Pattern struct {
	buf       *intimage.Buffer
	Repeat    PatternRepeat
	Transform Matrix // maps pattern space (image pixels) to user space
}

// NewPattern builds a Pattern from src, tiling per repeat. transform
// maps pattern space to user space; pass Identity() to keep the
// pattern's pixels aligned 1:1 with user-space units.
func NewPattern(src *Surface, repeat PatternRepeat, transform Matrix) *Pattern {
	buf := intimage.NewBuffer(src.Width(), src.Height())
	copy(buf.Pix, src.Data())
	return &Pattern{buf: buf, Repeat: repeat, Transform: transform}
}

// Sample implements Paint. It maps the device-space point back to
// pattern space via ctm and Transform's inverses, then samples
// nearest-neighbor. A non-invertible transform yields transparent,
// there being no well-defined source pixel to report.
func (p *Pattern) Sample(x, y float64, ctm Matrix) Color {
	inv, err := ctm.Invert()
	if err != nil {
		return Transparent
	}
	userPt := inv.TransformPoint(Point{X: x, Y: y})

	tinv, err := p.Transform.Invert()
	if err != nil {
		return Transparent
	}
	patPt := tinv.TransformPoint(userPt)

	r, g, b, a := intimage.Sample(p.buf, patPt.X, patPt.Y, p.Repeat.toInternal())
	return Color{R: r, G: g, B: b, A: a}
}
