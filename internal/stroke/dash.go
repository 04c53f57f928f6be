package stroke

// DashPattern is an alternating on/off length array plus a starting
// offset into the pattern, in the same user-space units as the
// polyline being dashed.
type DashPattern struct {
	Array  []float64
	Offset float64
}

// effectiveArray duplicates an odd-length array so the pattern always
// alternates on/off in pairs.
func (d DashPattern) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, len(d.Array)*2)
	copy(out, d.Array)
	copy(out[len(d.Array):], d.Array)
	return out
}

// ApplyDash walks polyline by arc length against pattern, splitting it
// into the "on" sub-polylines that should actually be stroked. A
// closed polyline (first point == last point) is treated as an open
// one for dashing purposes: HTML5 canvas restarts the dash pattern at
// the subpath start regardless of closure.
func ApplyDash(polyline []Point, pattern DashPattern) [][]Point {
	arr := pattern.effectiveArray()
	if len(arr) == 0 || len(polyline) < 2 {
		return [][]Point{polyline}
	}

	total := 0.0
	for _, v := range arr {
		total += v
	}
	if total <= 0 {
		return [][]Point{polyline}
	}

	offset := pattern.Offset
	offset -= total * float64(int(offset/total))
	if offset < 0 {
		offset += total
	}

	idx := 0
	remaining := arr[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(arr)
		remaining = arr[idx]
	}
	on := idx%2 == 0

	var result [][]Point
	var current []Point
	if on {
		current = append(current, polyline[0])
	}

	for i := 1; i < len(polyline); i++ {
		p0, p1 := polyline[i-1], polyline[i]
		segLen := p1.Distance(p0)
		pos := 0.0

		for pos < segLen {
			step := remaining
			if pos+step > segLen {
				step = segLen - pos
			}
			pos += step
			remaining -= step

			t := pos / segLen
			pt := p0.Lerp(p1, t)

			if on {
				current = append(current, pt)
			}

			if remaining <= 1e-9 {
				if on && len(current) > 1 {
					result = append(result, current)
				}
				current = nil
				on = !on
				idx = (idx + 1) % len(arr)
				remaining = arr[idx]
				if on {
					current = append(current, pt)
				}
			}
		}
	}

	if on && len(current) > 1 {
		result = append(result, current)
	}
	return result
}
