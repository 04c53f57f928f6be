package gg

import (
	ipath "github.com/gogpu/swcanvas/internal/path"
	"github.com/gogpu/swcanvas/internal/stroke"
)

// fillOutline flattens path's user-space geometry and transforms it
// to device space, ready for the rasterizer's fill rule.
func fillOutline(path *Path, ctm Matrix) [][]Point {
	subpaths := path.Flatten(ctm)
	out := make([][]Point, len(subpaths))
	for i, sub := range subpaths {
		pts := make([]Point, len(sub))
		for j, p := range sub {
			pts[j] = ctm.TransformPoint(p)
		}
		out[i] = pts
	}
	return out
}

// strokeOutline expands path's user-space geometry into device-space
// fill polygons, under style and ctm, ready for the rasterizer.
// Flattening, dashing, and stroke expansion all happen in user space;
// the current transform is applied to the final outline vertices
// only, since an affine image of a round join is not itself round
// under non-uniform scale unless expanded first.
//
// It also returns an alpha multiplier for the hairline case: when the
// stroke width maps to less than one device pixel, the true-width
// outline would underflow the scanline grid and rasterize to nothing,
// so the expander instead widens it to a one-pixel hairline and the
// caller attenuates output alpha by the returned factor to recover the
// visual weight of the thinner line.
func strokeOutline(path *Path, style Stroke, ctm Matrix) ([][]Point, float64) {
	subpaths := path.Flatten(ctm)

	sx, sy := ctm.Scales()
	maxScale := sx
	if sy > maxScale {
		maxScale = sy
	}
	tolerance := ipath.DefaultTolerance
	if maxScale > 1e-9 {
		tolerance /= maxScale
	}

	effectiveWidth := style.Width
	alphaFactor := 1.0
	if maxScale > 1e-9 {
		deviceWidth := style.Width * maxScale
		if deviceWidth > 0 && deviceWidth < 1 {
			alphaFactor = deviceWidth
			effectiveWidth = 1 / maxScale
		}
	}

	internalStyle := stroke.Stroke{
		Width:      effectiveWidth,
		Cap:        stroke.LineCap(style.Cap),
		Join:       stroke.LineJoin(style.Join),
		MiterLimit: style.MiterLimit,
	}

	var outlines [][]Point
	for _, sub := range subpaths {
		if len(sub) < 2 {
			continue
		}
		closed := sub[0] == sub[len(sub)-1]

		segments := [][]Point{sub}
		segClosed := []bool{closed}
		if style.IsDashed() {
			pattern := stroke.DashPattern{Array: style.Dash.effectiveArray(), Offset: style.Dash.Offset}
			dashed := stroke.ApplyDash(toStrokePoints(sub), pattern)
			segments = segments[:0]
			segClosed = segClosed[:0]
			for _, d := range dashed {
				segments = append(segments, fromStrokePoints(d))
				segClosed = append(segClosed, false)
			}
		}

		for i, seg := range segments {
			elements := stroke.ExpandPolyline(toStrokePoints(seg), segClosed[i], internalStyle, tolerance)
			if len(elements) == 0 {
				continue
			}
			polys := ipath.Flatten(toFlattenElementsFromStroke(elements), tolerance)
			for _, poly := range polys {
				outlines = append(outlines, transformPolygon(poly, ctm))
			}
		}
	}
	return outlines, alphaFactor
}

func toStrokePoints(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromStrokePoints(pts []stroke.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

func toFlattenElementsFromStroke(elements []stroke.PathElement) []ipath.Element {
	out := make([]ipath.Element, 0, len(elements))
	for _, elem := range elements {
		switch e := elem.(type) {
		case stroke.MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case stroke.LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case stroke.QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case stroke.CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: ipath.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case stroke.Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

func transformPolygon(poly []ipath.Point, ctm Matrix) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[i] = ctm.TransformPoint(Point{X: p.X, Y: p.Y})
	}
	return out
}
