// Package raster implements scanline polygon fill: it turns
// device-space polygons into per-row pixel spans under the non-zero or
// even-odd rule. Paint sampling, clipping and compositing are left to
// the caller.
package raster

import "sort"

// Point is an internal copy of gg.Point to avoid an import cycle.
type Point struct {
	X, Y float64
}

// edge is a non-horizontal polygon edge, y0 < y1, winding +1 if the
// original segment ran downward, -1 if upward.
type edge struct {
	x0, y0, x1, y1 float64
	winding        int
}

// Span is a half-open horizontal run of covered pixels on one row.
type Span struct {
	X0, X1 int
}

// buildEdges converts polygons into non-horizontal edges, skipping
// degenerate (horizontal) segments as they contribute nothing to a
// y+0.5-sampled scanline fill.
func buildEdges(polygons [][]Point) []edge {
	var edges []edge
	for _, poly := range polygons {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			w := 1
			if p0.Y > p1.Y {
				p0, p1 = p1, p0
				w = -1
			}
			edges = append(edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, winding: w})
		}
	}
	return edges
}

func isInside(winding int, evenOdd bool) bool {
	if evenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// crossing is an edge's x-intercept at a scanline, tagged with the
// edge's winding contribution.
type crossing struct {
	x       float64
	winding int
}

// Spans rasterizes polygons into per-row coverage spans over a
// width x height device-space raster, sampling each scanline at
// y+0.5. Spans outside [0,width) are clipped to that range.
func Spans(polygons [][]Point, width, height int, evenOdd bool) [][]Span {
	edges := buildEdges(polygons)
	if len(edges) == 0 {
		return nil
	}

	rows := make([][]Span, height)
	var crossings []crossing

	for y := 0; y < height; y++ {
		scanY := float64(y) + 0.5
		crossings = crossings[:0]
		for _, e := range edges {
			if scanY < e.y0 || scanY >= e.y1 {
				continue
			}
			t := (scanY - e.y0) / (e.y1 - e.y0)
			x := e.x0 + (e.x1-e.x0)*t
			crossings = append(crossings, crossing{x: x, winding: e.winding})
		}
		if len(crossings) == 0 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

		winding := 0
		spanStart := 0.0
		inSpan := false
		var rowSpans []Span
		for _, c := range crossings {
			wasInside := isInside(winding, evenOdd)
			winding += c.winding
			nowInside := isInside(winding, evenOdd)
			if !wasInside && nowInside {
				spanStart = c.x
				inSpan = true
			} else if wasInside && !nowInside && inSpan {
				rowSpans = append(rowSpans, clampSpan(spanStart, c.x, width))
				inSpan = false
			}
		}
		rows[y] = mergeSpans(rowSpans)
	}
	return rows
}

func clampSpan(x0, x1 float64, width int) Span {
	ix0 := int(x0 + 0.5)
	ix1 := int(x1 + 0.5)
	if ix0 < 0 {
		ix0 = 0
	}
	if ix1 > width {
		ix1 = width
	}
	return Span{X0: ix0, X1: ix1}
}

// mergeSpans drops empty/degenerate spans produced by clamping.
func mergeSpans(spans []Span) []Span {
	out := spans[:0]
	for _, sp := range spans {
		if sp.X0 < sp.X1 {
			out = append(out, sp)
		}
	}
	return out
}
