package gg

// Clip intersects the current clip mask with the current path, filled
// under fillRule (non-zero if rule is omitted). Pixels outside every
// clip pushed since the last Save stay invisible until the matching
// Restore.
func (c *Context) Clip(rule ...FillRule) {
	fr := c.fillRule
	if len(rule) > 0 {
		fr = rule[0]
	}
	polygons := fillOutline(c.path, c.ctm)
	c.clipStack.Clip(toClipPolygons(polygons), fr == FillRuleEvenOdd)
}

// IsPointInPath reports whether (x, y), in user space, falls inside
// the current path under fillRule when transformed by the current
// transform.
func (c *Context) IsPointInPath(x, y float64, rule ...FillRule) bool {
	fr := c.fillRule
	if len(rule) > 0 {
		fr = rule[0]
	}
	dev := c.ctm.TransformPoint(Point{X: x, Y: y})
	polygons := fillOutline(c.path, c.ctm)
	return pointInPolygons(dev, polygons, fr == FillRuleEvenOdd)
}

// IsPointInStroke reports whether (x, y), in user space, falls inside
// the current path's stroke outline under the current stroke style
// and transform.
func (c *Context) IsPointInStroke(x, y float64) bool {
	dev := c.ctm.TransformPoint(Point{X: x, Y: y})
	outlines, _ := strokeOutline(c.path, c.stroke, c.ctm)
	return pointInPolygons(dev, outlines, false)
}

// pointInPolygons tests p (device space) against a set of closed
// device-space polygons via a standard crossing-number scan, honoring
// winding direction for the non-zero rule.
func pointInPolygons(p Point, polygons [][]Point, evenOdd bool) bool {
	winding := 0
	for _, poly := range polygons {
		n := len(poly)
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			if p.Y < a.Y || p.Y >= b.Y {
				continue
			}
			t := (p.Y - a.Y) / (b.Y - a.Y)
			x := a.X + (b.X-a.X)*t
			if x > p.X {
				continue
			}
			if poly[i].Y < poly[(i+1)%n].Y {
				winding++
			} else {
				winding--
			}
		}
	}
	if evenOdd {
		return winding%2 != 0
	}
	return winding != 0
}
