package clip

import "sort"

// span is a half-open horizontal pixel run [x0, x1) on one scanline.
type span struct{ x0, x1 int }

type edge struct {
	x0, y0, x1, y1 float64
	winding        int
}

// scanFillSpans runs the non-zero/even-odd scanline algorithm of
// internal/raster against polygons already in device space, sampled at
// y+0.5, and returns the filled pixel spans per scanline row. Each
// polygon is closed implicitly, last vertex back to the first.
func scanFillSpans(polygons [][]Point, width, height int, evenOdd bool) [][]span {
	var edges []edge
	for _, poly := range polygons {
		if len(poly) < 2 {
			continue
		}
		for i := 0; i < len(poly); i++ {
			p0, p1 := poly[i], poly[(i+1)%len(poly)]
			if p0.Y == p1.Y {
				continue
			}
			w := 1
			if p1.Y < p0.Y {
				p0, p1 = p1, p0
				w = -1
			}
			edges = append(edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, winding: w})
		}
	}

	rows := make([][]span, height)
	if len(edges) == 0 {
		return rows
	}

	type crossing struct {
		x float64
		w int
	}

	for y := 0; y < height; y++ {
		scanY := float64(y) + 0.5
		var xs []crossing
		for _, e := range edges {
			if scanY < e.y0 || scanY >= e.y1 {
				continue
			}
			t := (scanY - e.y0) / (e.y1 - e.y0)
			x := e.x0 + t*(e.x1-e.x0)
			xs = append(xs, crossing{x: x, w: e.winding})
		}
		if len(xs) == 0 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		winding := 0
		var spanStart float64
		inSpan := false
		var rowSpans []span
		for _, c := range xs {
			wasInside := isInside(winding, evenOdd)
			winding += c.w
			nowInside := isInside(winding, evenOdd)

			if !wasInside && nowInside {
				spanStart = c.x
				inSpan = true
			} else if wasInside && !nowInside && inSpan {
				rowSpans = append(rowSpans, clampSpan(spanStart, c.x, width))
				inSpan = false
			}
		}
		rows[y] = rowSpans
	}
	return rows
}

func isInside(winding int, evenOdd bool) bool {
	if evenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

func clampSpan(x0, x1 float64, width int) span {
	ix0 := int(x0 + 0.5)
	ix1 := int(x1 + 0.5)
	if ix0 < 0 {
		ix0 = 0
	}
	if ix1 > width {
		ix1 = width
	}
	if ix1 < ix0 {
		ix1 = ix0
	}
	return span{x0: ix0, x1: ix1}
}
