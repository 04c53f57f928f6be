package gg

import (
	"io"
	"log/slog"

	"github.com/gogpu/swcanvas/internal/clip"
)

// Context is the main drawing context: a destination Surface, a
// current path under construction, paint/style state, and a
// save/restore stack covering the transform, paint, stroke style, and
// clip.
type Context struct {
	surface   *Surface
	clipStack *clip.Stack

	path *Path

	ctm            Matrix
	fillPaint      Paint
	strokePaint    Paint
	stroke         Stroke
	fillRule       FillRule
	globalAlpha    float64
	compositeOp    CompositeOp

	stack []contextState

	closed bool
}

type contextState struct {
	ctm         Matrix
	fillPaint   Paint
	strokePaint Paint
	stroke      Stroke
	fillRule    FillRule
	globalAlpha float64
	compositeOp CompositeOp
}

var _ io.Closer = (*Context)(nil)

// NewContext creates a drawing context targeting surface, with an
// identity transform, an opaque black fill and stroke, a 1px solid
// stroke, non-zero fill rule, full opacity, and source-over
// compositing — Canvas2D's documented initial state.
func NewContext(surface *Surface) *Context {
	c := &Context{
		surface:     surface,
		clipStack:   clip.NewStack(surface.Width(), surface.Height()),
		path:        NewPath(),
		ctm:         Identity(),
		fillPaint:   NewSolidPaint(Black),
		strokePaint: NewSolidPaint(Black),
		stroke:      DefaultStroke(),
		fillRule:    FillRuleNonZero,
		globalAlpha: 1,
		compositeOp: CompositeSourceOver,
	}
	maskBytes := (surface.Width()*surface.Height() + 7) / 8
	Logger().Debug("new context",
		slog.Int("width", surface.Width()),
		slog.Int("height", surface.Height()),
		slog.Int("clip_mask_bytes", maskBytes))
	return c
}

// Close is a no-op releasing no external resources; Context owns no
// OS handles. It exists so Context satisfies io.Closer for callers
// that manage drawing targets uniformly.
func (c *Context) Close() error {
	c.closed = true
	return nil
}

// Width returns the destination surface's width in pixels.
func (c *Context) Width() int { return c.surface.Width() }

// Height returns the destination surface's height in pixels.
func (c *Context) Height() int { return c.surface.Height() }

// Surface returns the destination surface.
func (c *Context) Surface() *Surface { return c.surface }

// --- Paint / style state ---

// SetFillColor sets a solid-color fill paint.
func (c *Context) SetFillColor(col Color) { c.fillPaint = NewSolidPaint(col) }

// SetFillPaint sets the fill paint to an arbitrary Paint source
// (solid color, gradient, or pattern).
func (c *Context) SetFillPaint(p Paint) { c.fillPaint = p }

// SetStrokeColor sets a solid-color stroke paint.
func (c *Context) SetStrokeColor(col Color) { c.strokePaint = NewSolidPaint(col) }

// SetStrokePaint sets the stroke paint to an arbitrary Paint source.
func (c *Context) SetStrokePaint(p Paint) { c.strokePaint = p }

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(w float64) { c.stroke.Width = w }

// SetLineCap sets the stroke's cap style.
func (c *Context) SetLineCap(cap LineCap) { c.stroke.Cap = cap }

// SetLineJoin sets the stroke's join style.
func (c *Context) SetLineJoin(join LineJoin) { c.stroke.Join = join }

// SetMiterLimit sets the stroke's miter limit.
func (c *Context) SetMiterLimit(limit float64) { c.stroke.MiterLimit = limit }

// SetLineDash sets the stroke's dash pattern. Pass no arguments to
// clear dashing and return to a solid stroke.
func (c *Context) SetLineDash(lengths ...float64) { c.stroke.Dash = NewDash(lengths...) }

// SetLineDashOffset sets the starting offset into the dash pattern.
func (c *Context) SetLineDashOffset(offset float64) {
	c.stroke.Dash = c.stroke.Dash.WithOffset(offset)
}

// SetGlobalAlpha sets the alpha multiplier applied to every
// subsequent fill, stroke, and drawImage, clamped to [0,1].
func (c *Context) SetGlobalAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.globalAlpha = alpha
}

// SetGlobalCompositeOperation sets the Porter-Duff operator used by
// subsequent fill, stroke, and drawImage calls.
func (c *Context) SetGlobalCompositeOperation(op CompositeOp) { c.compositeOp = op }

// --- Path construction (delegates to Path, in user space) ---

// BeginPath discards the current path and starts a new one.
func (c *Context) BeginPath() { c.path = NewPath() }

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) error { return c.path.MoveTo(x, y) }

// LineTo appends a line to (x, y).
func (c *Context) LineTo(x, y float64) error { return c.path.LineTo(x, y) }

// QuadraticTo appends a quadratic Bezier curve.
func (c *Context) QuadraticTo(cx, cy, x, y float64) error { return c.path.QuadraticTo(cx, cy, x, y) }

// CubicTo appends a cubic Bezier curve.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) error {
	return c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Arc appends a circular arc.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, ccw bool) error {
	return c.path.Arc(cx, cy, r, a0, a1, ccw)
}

// Ellipse appends an elliptical arc.
func (c *Context) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) error {
	return c.path.Ellipse(cx, cy, rx, ry, rot, a0, a1, ccw)
}

// ArcTo appends a two-tangent-line arc.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) error { return c.path.ArcTo(x1, y1, x2, y2, r) }

// Rect appends a rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) error { return c.path.Rect(x, y, w, h) }

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// --- Transform stack ---

// Translate composes a translation onto the current transform.
func (c *Context) Translate(x, y float64) { c.ctm = c.ctm.Multiply(Translate(x, y)) }

// Scale composes a scale onto the current transform.
func (c *Context) Scale(x, y float64) { c.ctm = c.ctm.Multiply(Scale(x, y)) }

// Rotate composes a rotation onto the current transform.
func (c *Context) Rotate(angle float64) { c.ctm = c.ctm.Multiply(Rotate(angle)) }

// Transform composes an arbitrary matrix onto the current transform.
func (c *Context) Transform(m Matrix) { c.ctm = c.ctm.Multiply(m) }

// SetTransform replaces the current transform outright.
func (c *Context) SetTransform(m Matrix) { c.ctm = m }

// ResetTransform resets the current transform to identity.
func (c *Context) ResetTransform() { c.ctm = Identity() }

// CurrentTransform returns the current transform.
func (c *Context) CurrentTransform() Matrix { return c.ctm }

// Save pushes the transform, paint, stroke style, fill rule, alpha,
// composite operator, and clip mask, so a matching Restore undoes
// every state change made in between.
func (c *Context) Save() {
	c.stack = append(c.stack, contextState{
		ctm:         c.ctm,
		fillPaint:   c.fillPaint,
		strokePaint: c.strokePaint,
		stroke:      c.stroke.Clone(),
		fillRule:    c.fillRule,
		globalAlpha: c.globalAlpha,
		compositeOp: c.compositeOp,
	})
	c.clipStack.Save()
}

// Restore pops back to the state in effect before the matching Save.
// A Restore with no matching Save is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctm = s.ctm
	c.fillPaint = s.fillPaint
	c.strokePaint = s.strokePaint
	c.stroke = s.stroke
	c.fillRule = s.fillRule
	c.globalAlpha = s.globalAlpha
	c.compositeOp = s.compositeOp
	c.clipStack.Restore()
}

// --- Fill / stroke / clip ---

// Fill rasterizes the current path with fillRule (non-zero if rule is
// omitted) using the fill paint, clipped by the current clip mask, and
// composited with the current global alpha and composite operator.
func (c *Context) Fill(rule ...FillRule) {
	if c.tryFastFillRect() || c.tryFastFillCircle() {
		return
	}
	fr := c.fillRule
	if len(rule) > 0 {
		fr = rule[0]
	}
	polygons := fillOutline(c.path, c.ctm)
	rasterizeFill(c.surface, c.clipStack.Top(), polygons, fr == FillRuleEvenOdd, c.fillPaint, c.ctm, c.compositeOp, c.globalAlpha)
}

// Stroke expands the current path into a stroke outline and
// rasterizes it with the stroke paint, the non-zero rule (an
// expanded stroke outline does not self-overlap in a way even-odd
// would treat differently), clipped and composited the same as Fill.
// A stroke width under one device pixel is widened to a hairline and
// its alpha attenuated to match, so thin strokes don't vanish.
func (c *Context) Stroke() {
	outlines, widthAlpha := strokeOutline(c.path, c.stroke, c.ctm)
	rasterizeFill(c.surface, c.clipStack.Top(), outlines, false, c.strokePaint, c.ctm, c.compositeOp, c.globalAlpha*widthAlpha)
}

