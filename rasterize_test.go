package gg

import (
	"testing"

	"github.com/gogpu/swcanvas/internal/clip"
)

func TestRasterizeFillSolidColorOpaque(t *testing.T) {
	surface, err := NewSurface(10, 10)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	poly := [][]Point{{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}}
	paint := NewSolidPaint(RGB(255, 0, 0))

	rasterizeFill(surface, nil, poly, false, paint, Identity(), CompositeSourceOver, 1)

	if got := surface.GetPixel(5, 5); got != RGB(255, 0, 0) {
		t.Errorf("pixel inside fill = %v, want opaque red", got)
	}
	if got := surface.GetPixel(0, 0); got.A != 0 {
		t.Errorf("pixel outside fill = %v, want transparent", got)
	}
}

func TestRasterizeFillRespectsClipMask(t *testing.T) {
	surface, _ := NewSurface(10, 10)
	mask := clip.NewMask(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			mask.SetPixel(x, y, false)
		}
	}

	poly := [][]Point{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	paint := NewSolidPaint(RGB(0, 255, 0))
	rasterizeFill(surface, mask, poly, false, paint, Identity(), CompositeSourceOver, 1)

	if got := surface.GetPixel(2, 5); got.A != 0 {
		t.Errorf("pixel in clipped-out region = %v, want transparent", got)
	}
	if got := surface.GetPixel(7, 5); got != RGB(0, 255, 0) {
		t.Errorf("pixel in visible region = %v, want opaque green", got)
	}
}

func TestRasterizeFillSourceInClearsUncoveredDestination(t *testing.T) {
	surface, _ := NewSurface(10, 10)
	// Paint a blue square covering the left half of the surface first.
	blueSquare := [][]Point{{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 10}, {X: 0, Y: 10}}}
	rasterizeFill(surface, nil, blueSquare, false, NewSolidPaint(RGB(0, 0, 255)), Identity(), CompositeSourceOver, 1)

	// Now fill a red square on the right half with source-in: since
	// source and destination never overlap, every pixel should end up
	// transparent — the blue on the left must be cleared too.
	redSquare := [][]Point{{{X: 6, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10}}}
	rasterizeFill(surface, nil, redSquare, false, NewSolidPaint(RGB(255, 0, 0)), Identity(), CompositeSourceIn, 1)

	if got := surface.GetPixel(2, 5); got != Transparent {
		t.Errorf("pixel outside source shape (formerly blue) = %v, want Transparent after source-in with no overlap", got)
	}
	if got := surface.GetPixel(8, 5); got != Transparent {
		t.Errorf("pixel inside source shape but outside destination = %v, want Transparent (source-in needs destination coverage)", got)
	}
}

func TestRasterizeFillSourceInKeepsOverlap(t *testing.T) {
	surface, _ := NewSurface(10, 10)
	blueSquare := [][]Point{{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 10}, {X: 0, Y: 10}}}
	rasterizeFill(surface, nil, blueSquare, false, NewSolidPaint(RGB(0, 0, 255)), Identity(), CompositeSourceOver, 1)

	redCircleLikeSquare := [][]Point{{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}}
	rasterizeFill(surface, nil, redCircleLikeSquare, false, NewSolidPaint(RGB(255, 0, 0)), Identity(), CompositeSourceIn, 1)

	if got := surface.GetPixel(4, 4); got != RGB(255, 0, 0) {
		t.Errorf("pixel where source overlaps destination = %v, want opaque red", got)
	}
	if got := surface.GetPixel(9, 9); got != Transparent {
		t.Errorf("pixel outside both shapes = %v, want Transparent", got)
	}
}

func TestRasterizeFillAppliesGlobalAlpha(t *testing.T) {
	surface, _ := NewSurface(4, 4)
	poly := [][]Point{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}}
	paint := NewSolidPaint(RGB(255, 255, 255))

	rasterizeFill(surface, nil, poly, false, paint, Identity(), CompositeSourceOver, 0.5)

	got := surface.GetPixel(2, 2)
	if got.A < 120 || got.A > 135 {
		t.Errorf("pixel alpha = %d, want ~127 (globalAlpha 0.5 over transparent)", got.A)
	}
}
