package image

// Repeat selects how a Buffer tiles outside its native bounds, the
// four modes CSS/Canvas2D createPattern supports.
type Repeat uint8

const (
	RepeatBoth Repeat = iota
	RepeatX
	RepeatY
	NoRepeat
)

// Sample performs nearest-neighbor sampling of buf at floating-point
// pattern-space coordinates (u, v), tiling per repeat. Coordinates
// outside the buffer under NoRepeat (on the non-repeating axis) return
// fully transparent, not a clamped edge pixel: HTML5 canvas patterns
// do not pad.
func Sample(buf *Buffer, u, v float64, repeat Repeat) (r, g, b, a uint8) {
	x := int(u)
	if u < 0 && float64(x) != u {
		x--
	}
	y := int(v)
	if v < 0 && float64(y) != v {
		y--
	}

	repeatX := repeat == RepeatBoth || repeat == RepeatX
	repeatY := repeat == RepeatBoth || repeat == RepeatY

	if repeatX {
		x = wrap(x, buf.Width)
	} else if x < 0 || x >= buf.Width {
		return 0, 0, 0, 0
	}
	if repeatY {
		y = wrap(y, buf.Height)
	} else if y < 0 || y >= buf.Height {
		return 0, 0, 0, 0
	}
	return buf.At(x, y)
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
