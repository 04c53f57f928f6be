package stroke

// ExpandPolyline strokes an already-flattened polyline (straight
// segments only — the caller has flattened any curves upstream) and
// returns the outline as path elements (lines plus the cubic arcs
// used for round joins/caps), ready for a second flattening pass.
func ExpandPolyline(points []Point, closed bool, style Stroke, tolerance float64) []PathElement {
	if len(points) < 2 {
		return nil
	}

	elements := make([]PathElement, 0, len(points)+1)
	elements = append(elements, MoveTo{Point: points[0]})
	for _, p := range points[1:] {
		elements = append(elements, LineTo{Point: p})
	}
	if closed {
		elements = append(elements, Close{})
	}

	e := NewStrokeExpander(style)
	e.SetTolerance(tolerance)
	return e.Expand(elements)
}
