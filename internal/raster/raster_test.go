package raster

import "testing"

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestSpansFillsSquare(t *testing.T) {
	rows := Spans([][]Point{square(2, 2, 8, 8)}, 10, 10, false)
	for y := 0; y < 10; y++ {
		if y < 2 || y >= 8 {
			if len(rows[y]) != 0 {
				t.Errorf("row %d outside square has spans %v, want none", y, rows[y])
			}
			continue
		}
		if len(rows[y]) != 1 || rows[y][0] != (Span{X0: 2, X1: 8}) {
			t.Errorf("row %d = %v, want [{2 8}]", y, rows[y])
		}
	}
}

func TestSpansEvenOddHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 7, 7)
	rows := Spans([][]Point{outer, inner}, 10, 10, true)
	// Row 5 should have two spans: left ring and right ring, with a hole in the middle.
	row := rows[5]
	if len(row) != 2 {
		t.Fatalf("even-odd row with a hole = %v, want 2 spans", row)
	}
}

func TestSpansNonZeroSameWindingFillsSolid(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 7, 7) // same winding direction: nonzero treats this as solid, no hole
	rows := Spans([][]Point{outer, inner}, 10, 10, false)
	row := rows[5]
	if len(row) != 1 || row[0] != (Span{X0: 0, X1: 10}) {
		t.Errorf("nonzero row with same-winding overlap = %v, want one solid span [{0 10}]", row)
	}
}

func TestSpansEmptyPolygonProducesNoRows(t *testing.T) {
	rows := Spans(nil, 5, 5, false)
	if rows != nil {
		t.Errorf("Spans(nil) = %v, want nil", rows)
	}
}

func TestSpansClampsToWidth(t *testing.T) {
	rows := Spans([][]Point{square(-5, 2, 15, 8)}, 10, 10, false)
	if rows[4][0] != (Span{X0: 0, X1: 10}) {
		t.Errorf("out-of-range span = %v, want clamped to [0,10)", rows[4])
	}
}
