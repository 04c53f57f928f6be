// Package path flattens curves, arcs, and ellipses into polylines.
package path

import "math"

// Point is an internal copy of gg.Point to avoid an import cycle.
type Point struct {
	X, Y float64
}

// DefaultTolerance is the fixed chord-distance tolerance used by the
// engine, expressed in device pixels. Callers flattening in user space
// under a scaling transform must pre-scale it down (tol/maxScale) so
// the eventual device-space error still respects this bound.
const DefaultTolerance = 0.25

// maxFlattenPoints is a safety stop against runaway recursion on
// pathological control points.
const maxFlattenPoints = 1000

// Element is one command in a flattener-ready path.
type Element interface{ isElement() }

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line to Point.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Arc draws a circular arc of radius R around (Cx,Cy) from A0 to A1.
// CCW selects sweep direction (counterclockwise when true).
type Arc struct {
	Cx, Cy, R  float64
	A0, A1     float64
	CCW        bool
}

func (Arc) isElement() {}

// Ellipse draws an elliptical arc, the ellipse rotated by Rot radians.
type Ellipse struct {
	Cx, Cy, Rx, Ry, Rot float64
	A0, A1              float64
	CCW                 bool
}

func (Ellipse) isElement() {}

// ArcTo draws a line to the tangent point on (current->P1), then an
// arc of radius R tangent to (current->P1) and (P1->P2), ending at the
// tangent point on (P1->P2).
type ArcTo struct {
	X1, Y1, X2, Y2, R float64
}

func (ArcTo) isElement() {}

// Close appends the subpath-start vertex, terminating the polygon.
type Close struct{}

func (Close) isElement() {}

// Flatten converts elements into one polygon per subpath, in command
// order, under the given chord tolerance.
func Flatten(elements []Element, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var polygons [][]Point
	var current []Point
	var cursor, subpathStart Point
	haveCursor := false

	flush := func() {
		if len(current) > 0 {
			polygons = append(polygons, current)
		}
		current = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cursor = e.Point
			subpathStart = e.Point
			haveCursor = true
			current = append(current, cursor)

		case LineTo:
			if !haveCursor {
				cursor = e.Point
				subpathStart = e.Point
				haveCursor = true
				current = append(current, cursor)
				continue
			}
			cursor = e.Point
			current = append(current, cursor)

		case QuadTo:
			pts := flattenQuadratic(cursor, e.Control, e.Point, tolerance)
			current = append(current, pts...)
			cursor = e.Point

		case CubicTo:
			pts := flattenCubic(cursor, e.Control1, e.Control2, e.Point, tolerance)
			current = append(current, pts...)
			cursor = e.Point

		case Arc:
			pts := flattenArc(e.Cx, e.Cy, e.R, e.R, 0, e.A0, e.A1, e.CCW, tolerance)
			current = append(current, pts...)
			if len(pts) > 0 {
				if !haveCursor {
					subpathStart = pts[0]
					haveCursor = true
				}
				cursor = pts[len(pts)-1]
			}

		case Ellipse:
			pts := flattenArc(e.Cx, e.Cy, e.Rx, e.Ry, e.Rot, e.A0, e.A1, e.CCW, tolerance)
			current = append(current, pts...)
			if len(pts) > 0 {
				cursor = pts[len(pts)-1]
			}

		case ArcTo:
			pts := flattenArcTo(cursor, Point{X: e.X1, Y: e.Y1}, Point{X: e.X2, Y: e.Y2}, e.R, tolerance)
			current = append(current, pts...)
			if len(pts) > 0 {
				cursor = pts[len(pts)-1]
			}

		case Close:
			if len(current) > 0 && current[len(current)-1] != subpathStart {
				current = append(current, subpathStart)
			}
			cursor = subpathStart
		}
	}

	flush()
	return polygons
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64     { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Point) distance(q Point) float64 { return p.sub(q).length() }

func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, &points, 0)
	return points
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point, depth int) {
	if distanceToLine(p1, p0, p2) < tolerance || len(*points) > maxFlattenPoints || depth > 24 {
		*points = append(*points, p2)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)
	flattenQuadraticRec(p0, q0, q2, tolerance, points, depth+1)
	flattenQuadraticRec(q2, q1, p2, tolerance, points, depth+1)
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, &points, 0)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point, depth int) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tolerance || len(*points) > maxFlattenPoints || depth > 24 {
		*points = append(*points, p3)
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points, depth+1)
	flattenCubicRec(s, r1, q2, p3, tolerance, points, depth+1)
}

func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.distance(a)
	}
	ap := p.sub(a)
	t := ap.dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}
	closest := a.add(ab.mul(t))
	return p.distance(closest)
}

// flattenArc emits n+1 evenly spaced points on an (possibly rotated,
// possibly elliptical) arc, n = max(1, ceil(|a1-a0|/thetaMax)) with
// thetaMax = 2*acos(max(0, 1-tol/rMin)).
func flattenArc(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool, tolerance float64) []Point {
	if !ccw && a1 < a0 {
		a1 += 2 * math.Pi
	}
	if ccw && a0 < a1 {
		a0 += 2 * math.Pi
	}

	rMin := math.Min(rx, ry)
	if rMin < 1e-9 {
		rMin = 1e-9
	}
	ratio := 1 - tolerance/rMin
	if ratio < 0 {
		ratio = 0
	}
	thetaMax := 2 * math.Acos(ratio)
	if thetaMax < 1e-6 {
		thetaMax = 1e-6
	}

	sweep := math.Abs(a1 - a0)
	n := int(math.Ceil(sweep / thetaMax))
	if n < 1 {
		n = 1
	}

	cosRot, sinRot := math.Cos(rot), math.Sin(rot)
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(n)
		ex := rx * math.Cos(t)
		ey := ry * math.Sin(t)
		x := cx + ex*cosRot - ey*sinRot
		y := cy + ex*sinRot + ey*cosRot
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// flattenArcTo implements the canvas-style two-tangent-line arc: a
// line from p0 to the tangent point on (p0->p1), then an arc of
// radius r tangent to both segments, ending at the tangent point on
// (p1->p2). Degenerate inputs fall back to a straight LineTo(p1).
func flattenArcTo(p0, p1, p2 Point, r float64, tolerance float64) []Point {
	v0 := p0.sub(p1)
	v1 := p2.sub(p1)
	len0 := v0.length()
	len1 := v1.length()

	if len0 < 1e-9 || len1 < 1e-9 || r <= 0 {
		return []Point{p1}
	}

	u0 := v0.mul(1 / len0)
	u1 := v1.mul(1 / len1)

	cosAngle := u0.dot(u1)
	if cosAngle > 1 {
		cosAngle = 1
	}
	if cosAngle < -1 {
		cosAngle = -1
	}
	angle := math.Acos(cosAngle)

	if math.Abs(math.Sin(angle)) < 1e-9 {
		// Collinear: no arc possible.
		return []Point{p1}
	}

	dist := r / math.Tan(angle/2)
	if dist > len0 || dist > len1 {
		// Radius too large for the segments; canvas clamps, here we
		// fall back to a direct line as the simplest safe behavior.
		return []Point{p1}
	}

	tangent0 := p1.add(u0.mul(dist))
	tangent1 := p1.add(u1.mul(dist))

	// Bisector direction from p1 toward the arc center.
	bisector := u0.add(u1)
	blen := bisector.length()
	if blen < 1e-9 {
		return []Point{p1}
	}
	bisector = bisector.mul(1 / blen)

	centerDist := math.Sqrt(r*r + dist*dist)
	center := p1.add(bisector.mul(centerDist))

	a0 := math.Atan2(tangent0.Y-center.Y, tangent0.X-center.X)
	a1 := math.Atan2(tangent1.Y-center.Y, tangent1.X-center.X)

	// Choose the sweep direction that stays on the short (tangent) arc.
	cross := u0.X*u1.Y - u0.Y*u1.X
	ccw := cross > 0

	return flattenArc(center.X, center.Y, r, r, 0, a0, a1, ccw, tolerance)
}
