package gg

import (
	"github.com/gogpu/swcanvas/internal/clip"
	"github.com/gogpu/swcanvas/internal/raster"
)

func toRasterPolygons(polygons [][]Point) [][]raster.Point {
	out := make([][]raster.Point, len(polygons))
	for i, poly := range polygons {
		pts := make([]raster.Point, len(poly))
		for j, p := range poly {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out
}

func toClipPolygons(polygons [][]Point) [][]clip.Point {
	out := make([][]clip.Point, len(polygons))
	for i, poly := range polygons {
		pts := make([]clip.Point, len(poly))
		for j, p := range poly {
			pts[j] = clip.Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out
}

// rasterizeFill scans polygons (device space) at width x height,
// sampling paint at each covered pixel's center through ctm, testing
// clipMask visibility, and compositing the sampled color into surface
// with op and globalAlpha.
//
// Most operators leave the destination untouched outside the source
// shape, so it's enough to visit source-covered pixels. The
// exclusionary operators (source-in, source-out, destination-in,
// destination-atop, xor) and copy are different: they can erase or
// reveal destination pixels that the source shape never covers, so
// those sweep the union of the clip region and the source coverage,
// compositing a fully transparent source at every clipped pixel the
// shape doesn't cover.
func rasterizeFill(surface *Surface, clipMask *clip.Mask, polygons [][]Point, evenOdd bool, paint Paint, ctm Matrix, op CompositeOp, globalAlpha float64) {
	width, height := surface.Width(), surface.Height()
	rows := raster.Spans(toRasterPolygons(polygons), width, height, evenOdd)
	noClip := clipMask == nil || clipMask.IsNoClipping()

	if !needsDestinationSweep(op) {
		if rows == nil {
			return
		}
		for y, spans := range rows {
			for _, sp := range spans {
				for x := sp.X0; x < sp.X1; x++ {
					if !noClip && !clipMask.GetPixel(x, y) {
						continue
					}
					src := paint.Sample(float64(x)+0.5, float64(y)+0.5, ctm)
					dst := surface.GetPixel(x, y)
					surface.SetPixel(x, y, Composite(src, dst, op, globalAlpha))
				}
			}
		}
		return
	}

	for y := 0; y < height; y++ {
		var spans []raster.Span
		if rows != nil {
			spans = rows[y]
		}
		si := 0
		for x := 0; x < width; x++ {
			if !noClip && !clipMask.GetPixel(x, y) {
				continue
			}
			for si < len(spans) && x >= spans[si].X1 {
				si++
			}
			src := Transparent
			if si < len(spans) && x >= spans[si].X0 {
				src = paint.Sample(float64(x)+0.5, float64(y)+0.5, ctm)
			}
			dst := surface.GetPixel(x, y)
			surface.SetPixel(x, y, Composite(src, dst, op, globalAlpha))
		}
	}
}

// clearPolygons unconditionally replaces every clip-visible pixel
// covered by polygons with transparent black, regardless of the
// context's composite operator or global alpha. Unlike rasterizeFill
// with CompositeCopy, this never sweeps pixels outside polygons — a
// clear is always scoped to the shape it's given.
func clearPolygons(surface *Surface, clipMask *clip.Mask, polygons [][]Point) {
	width, height := surface.Width(), surface.Height()
	rows := raster.Spans(toRasterPolygons(polygons), width, height, false)
	if rows == nil {
		return
	}
	noClip := clipMask == nil || clipMask.IsNoClipping()
	for y, spans := range rows {
		for _, sp := range spans {
			for x := sp.X0; x < sp.X1; x++ {
				if !noClip && !clipMask.GetPixel(x, y) {
					continue
				}
				surface.SetPixel(x, y, Transparent)
			}
		}
	}
}

// needsDestinationSweep reports whether op can make destination pixels
// outside the source shape disappear or reappear, requiring the
// clip-union sweep instead of a source-spans-only scan.
func needsDestinationSweep(op CompositeOp) bool {
	switch op {
	case CompositeSourceIn, CompositeSourceOut, CompositeDestinationIn, CompositeDestinationAtop, CompositeXor, CompositeCopy:
		return true
	default:
		return false
	}
}
