package gg

import (
	"math"

	ipath "github.com/gogpu/swcanvas/internal/path"
)

// PathElement represents a single element in a path, stored in user
// space. Commands are transformed to device space only after
// flattening (and, for strokes, stroke expansion): an affine image of
// a circle is generally an ellipse, so Arc/Ellipse must flatten
// before the current transform is applied.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcCmd draws a circular arc of radius R around (Cx,Cy) from A0 to
// A1 radians. CCW selects the sweep direction.
type ArcCmd struct {
	Cx, Cy, R float64
	A0, A1    float64
	CCW       bool
}

func (ArcCmd) isPathElement() {}

// EllipseCmd draws an elliptical arc, the ellipse rotated by Rot
// radians, from A0 to A1.
type EllipseCmd struct {
	Cx, Cy, Rx, Ry, Rot float64
	A0, A1              float64
	CCW                 bool
}

func (EllipseCmd) isPathElement() {}

// ArcToCmd draws a line from the current point to the tangent point
// on (current -> (X1,Y1)), then an arc of radius R tangent to both
// segments, ending at the tangent point on ((X1,Y1) -> (X2,Y2)).
type ArcToCmd struct {
	X1, Y1, X2, Y2, R float64
}

func (ArcToCmd) isPathElement() {}

// Close closes the current subpath by drawing a line to the start point.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path, its commands recorded in user space.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

func checkFinite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteInput
		}
	}
	return nil
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) error {
	if err := checkFinite(x, y); err != nil {
		return err
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return nil
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) error {
	if err := checkFinite(x, y); err != nil {
		return err
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	return nil
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) error {
	if err := checkFinite(cx, cy, x, y); err != nil {
		return err
	}
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
	return nil
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) error {
	if err := checkFinite(c1x, c1y, c2x, c2y, x, y); err != nil {
		return err
	}
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
	return nil
}

// Arc appends a circular arc of radius r around (cx, cy) from angle1
// to angle2 radians, swept counterclockwise when ccw is true.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64, ccw bool) error {
	if err := checkFinite(cx, cy, r, angle1, angle2); err != nil {
		return err
	}
	if r < 0 {
		return ErrNegativeRadius
	}
	p.elements = append(p.elements, ArcCmd{Cx: cx, Cy: cy, R: r, A0: angle1, A1: angle2, CCW: ccw})
	p.current = Pt(cx+r*math.Cos(angle2), cy+r*math.Sin(angle2))
	if len(p.elements) == 1 {
		p.start = Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	}
	return nil
}

// Ellipse appends an elliptical arc centered at (cx, cy) with radii
// (rx, ry), rotated by rot radians, from angle1 to angle2.
func (p *Path) Ellipse(cx, cy, rx, ry, rot, angle1, angle2 float64, ccw bool) error {
	if err := checkFinite(cx, cy, rx, ry, rot, angle1, angle2); err != nil {
		return err
	}
	if rx < 0 || ry < 0 {
		return ErrNegativeRadius
	}
	p.elements = append(p.elements, EllipseCmd{
		Cx: cx, Cy: cy, Rx: rx, Ry: ry, Rot: rot, A0: angle1, A1: angle2, CCW: ccw,
	})
	cosRot, sinRot := math.Cos(rot), math.Sin(rot)
	ex, ey := rx*math.Cos(angle2), ry*math.Sin(angle2)
	p.current = Pt(cx+ex*cosRot-ey*sinRot, cy+ex*sinRot+ey*cosRot)
	return nil
}

// ArcTo draws a line from the current point to the tangent point on
// (current -> (x1,y1)), then an arc of radius r tangent to both
// segments, ending at the tangent point on ((x1,y1) -> (x2,y2)).
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) error {
	if err := checkFinite(x1, y1, x2, y2, r); err != nil {
		return err
	}
	if r < 0 {
		return ErrNegativeRadius
	}
	p.elements = append(p.elements, ArcToCmd{X1: x1, Y1: y1, X2: x2, Y2: y2, R: r})
	p.current = Pt(x2, y2)
	return nil
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements, in user space.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
// A path has a current point after MoveTo, LineTo, or any curve operation.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Rect adds a rectangle subpath — pure sugar over MoveTo/LineTo/Close,
// not a first-class element.
func (p *Path) Rect(x, y, w, h float64) error {
	if err := checkFinite(x, y, w, h); err != nil {
		return err
	}
	if err := p.MoveTo(x, y); err != nil {
		return err
	}
	if err := p.LineTo(x+w, y); err != nil {
		return err
	}
	if err := p.LineTo(x+w, y+h); err != nil {
		return err
	}
	if err := p.LineTo(x, y+h); err != nil {
		return err
	}
	p.Close()
	return nil
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// axisAlignedRect is the decoded form of a path built entirely by a
// single Rect call: its four corners with no rotation or skew.
type axisAlignedRect struct {
	X, Y, W, H float64
}

// asAxisAlignedRect reports whether p consists of exactly the
// MoveTo/LineTo/LineTo/LineTo/Close sequence Rect emits, and if so
// returns the decoded rectangle. Used by the fast fill path to skip
// the general rasterizer for the common unrotated-rect case.
func (p *Path) asAxisAlignedRect() (axisAlignedRect, bool) {
	if len(p.elements) != 5 {
		return axisAlignedRect{}, false
	}
	move, ok := p.elements[0].(MoveTo)
	if !ok {
		return axisAlignedRect{}, false
	}
	l1, ok := p.elements[1].(LineTo)
	if !ok {
		return axisAlignedRect{}, false
	}
	l2, ok := p.elements[2].(LineTo)
	if !ok {
		return axisAlignedRect{}, false
	}
	l3, ok := p.elements[3].(LineTo)
	if !ok {
		return axisAlignedRect{}, false
	}
	if _, ok := p.elements[4].(Close); !ok {
		return axisAlignedRect{}, false
	}

	x0, y0 := move.Point.X, move.Point.Y
	x1, y1 := l1.Point.X, l1.Point.Y
	x2, y2 := l2.Point.X, l2.Point.Y
	x3, y3 := l3.Point.X, l3.Point.Y

	if y1 != y0 || x2 != x1 || y3 != y2 || x3 != x0 {
		return axisAlignedRect{}, false
	}
	return axisAlignedRect{X: x0, Y: y0, W: x1 - x0, H: y2 - y1}, true
}

// asFullCircle reports whether p consists of nothing but a single
// full-sweep Arc command (the idiomatic way to draw a circle),
// optionally followed by Close, and if so returns its center and
// radius in user space. Used by the fast fill path to skip the
// general rasterizer for a circle under a uniform-scale transform
// (rotation included).
func (p *Path) asFullCircle() (cx, cy, r float64, ok bool) {
	n := len(p.elements)
	if n != 1 && n != 2 {
		return 0, 0, 0, false
	}
	arc, isArc := p.elements[0].(ArcCmd)
	if !isArc {
		return 0, 0, 0, false
	}
	if n == 2 {
		if _, isClose := p.elements[1].(Close); !isClose {
			return 0, 0, 0, false
		}
	}
	sweep := arc.A1 - arc.A0
	if math.Abs(math.Abs(sweep)-2*math.Pi) > 1e-6 {
		return 0, 0, 0, false
	}
	return arc.Cx, arc.Cy, arc.R, true
}

// toFlattenElements converts the user-space path elements to the
// internal/path flattener's element type, a one-to-one mapping.
func (p *Path) toFlattenElements() []ipath.Element {
	out := make([]ipath.Element, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: ipath.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case ArcCmd:
			out = append(out, ipath.Arc{Cx: e.Cx, Cy: e.Cy, R: e.R, A0: e.A0, A1: e.A1, CCW: e.CCW})
		case EllipseCmd:
			out = append(out, ipath.Ellipse{
				Cx: e.Cx, Cy: e.Cy, Rx: e.Rx, Ry: e.Ry, Rot: e.Rot, A0: e.A0, A1: e.A1, CCW: e.CCW,
			})
		case ArcToCmd:
			out = append(out, ipath.ArcTo{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2, R: e.R})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

// Flatten flattens the path's user-space commands into polygons (one
// per subpath), under a chord tolerance pre-scaled for ctm's maximum
// axis scale factor so the device-space error still respects
// ipath.DefaultTolerance pixels.
func (p *Path) Flatten(ctm Matrix) [][]Point {
	sx, sy := ctm.Scales()
	maxScale := math.Max(math.Abs(sx), math.Abs(sy))
	tolerance := ipath.DefaultTolerance
	if maxScale > 1e-9 {
		tolerance /= maxScale
	}

	raw := ipath.Flatten(p.toFlattenElements(), tolerance)
	polygons := make([][]Point, len(raw))
	for i, poly := range raw {
		pts := make([]Point, len(poly))
		for j, pt := range poly {
			pts[j] = Point{X: pt.X, Y: pt.Y}
		}
		polygons[i] = pts
	}
	return polygons
}
