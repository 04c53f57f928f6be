// Package gg implements a software-rendered, HTML5-Canvas-2D-like
// rasterization engine: paths, curves, arcs, and their flattening to
// polygons; a scanline polygon rasterizer with non-zero and even-odd
// fill rules; stroke expansion with caps, joins, miter limit, and
// dashing; a 1-bit stencil clip stack; Porter-Duff compositing; and
// nearest-neighbor image and pattern sampling.
//
// # Quick start
//
//	import "github.com/gogpu/swcanvas"
//
//	surface, _ := gg.NewSurface(512, 512)
//	dc := gg.NewContext(surface)
//
//	dc.SetFillColor(gg.RGB(255, 0, 0))
//	dc.BeginPath()
//	dc.Arc(256, 256, 100, 0, 2*math.Pi, false)
//	dc.Fill(gg.FillRuleNonZero)
//
// # Scope
//
// This package is the core rasterization engine only. It does not
// parse CSS color strings, encode image files, or render text —
// those are external collaborators that sit in front of or behind
// this engine.
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Angles are in radians; with `counterclockwise=false` (the default),
// arcs sweep clockwise in visual terms, matching the HTML5 Canvas
// convention of y-down "clockwise".
package gg
