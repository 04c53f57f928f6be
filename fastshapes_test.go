package gg

import (
	"math"
	"testing"
)

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	surface, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return NewContext(surface)
}

func TestFastFillRectPaintsSolidRect(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetFillColor(RGB(200, 0, 0))
	if err := c.Rect(2, 2, 4, 3); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.Fill()

	if got := c.Surface().GetPixel(3, 3); got != RGB(200, 0, 0) {
		t.Errorf("GetPixel(3,3) = %v, want RGB(200,0,0)", got)
	}
	if got := c.Surface().GetPixel(0, 0); got.A != 0 {
		t.Errorf("GetPixel(0,0) outside rect = %v, want transparent", got)
	}
	if got := c.Surface().GetPixel(6, 5); got.A != 0 {
		t.Errorf("GetPixel(6,5) outside rect = %v, want transparent", got)
	}
}

func TestFastFillRectMatchesGeneralRasterizerOnRotation(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetFillColor(RGB(0, 150, 0))
	c.Rotate(0.3) // disqualifies the fast path: no longer axis-aligned
	if err := c.Rect(2, 2, 4, 3); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.Fill()

	if got := c.Surface().GetPixel(3, 4); got != RGB(0, 150, 0) {
		t.Errorf("GetPixel(3,4) under rotated transform = %v, want RGB(0,150,0)", got)
	}
}

func TestFastFillRectHonorsGlobalAlpha(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.SetFillColor(RGB(100, 100, 100))
	c.SetGlobalAlpha(0.5)
	if err := c.Rect(0, 0, 4, 4); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.Fill()

	got := c.Surface().GetPixel(1, 1)
	if got.A == 255 || got.A == 0 {
		t.Errorf("GetPixel(1,1).A = %d, want a partial alpha from globalAlpha=0.5", got.A)
	}
}

func TestFastFillRectSkipsWhenPaintIsGradient(t *testing.T) {
	c := newTestContext(t, 6, 6)
	c.SetFillPaint(NewLinearGradient(0, 0, 6, 0))
	if err := c.Rect(0, 0, 6, 6); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.Fill() // should not panic falling into the fast path with the wrong paint type
}

func TestFastFillCirclePaintsDisc(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.SetFillColor(RGB(0, 0, 200))
	if err := c.Arc(10, 10, 6, 0, 2*math.Pi, false); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	c.Fill()

	if got := c.Surface().GetPixel(10, 10); got != RGB(0, 0, 200) {
		t.Errorf("GetPixel(10,10) center = %v, want RGB(0,0,200)", got)
	}
	if got := c.Surface().GetPixel(1, 1); got.A != 0 {
		t.Errorf("GetPixel(1,1) outside disc = %v, want transparent", got)
	}
}

func TestFastFillCircleSkipsPartialArc(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.SetFillColor(RGB(0, 0, 200))
	if err := c.Arc(10, 10, 6, 0, math.Pi, false); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	c.Fill() // a half-circle isn't asFullCircle; must fall back without panicking

	// The arc sweeps from angle 0 to pi, bulging toward +y; (10,13) sits
	// inside that half-disc, chord-closed by the general rasterizer.
	if got := c.Surface().GetPixel(10, 13); got.A == 0 {
		t.Errorf("GetPixel(10,13) = %v, want the half-circle's fill to cover this point", got)
	}
}

func TestFastFillCircleSkipsUnderNonUniformScale(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.SetFillColor(RGB(0, 0, 200))
	c.Scale(2, 1)
	if err := c.Arc(5, 10, 3, 0, 2*math.Pi, false); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	c.Fill() // an ellipse under this transform; must not be mistaken for a circle

	if got := c.Surface().GetPixel(10, 10); got != RGB(0, 0, 200) {
		t.Errorf("GetPixel(10,10) = %v, want RGB(0,0,200) at the ellipse center", got)
	}
}
