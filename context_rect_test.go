package gg

import "testing"

func TestFillRectPaintsWithoutDisturbingCurrentPath(t *testing.T) {
	c := newTestContext(t, 10, 10)
	if err := c.MoveTo(0, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	c.SetFillColor(RGB(1, 2, 3))

	if err := c.FillRect(2, 2, 4, 4); err != nil {
		t.Fatalf("FillRect: %v", err)
	}

	if got := c.Surface().GetPixel(4, 4); got != RGB(1, 2, 3) {
		t.Errorf("GetPixel(4,4) = %v, want RGB(1,2,3)", got)
	}
	if got := c.Surface().GetPixel(8, 8); got.A != 0 {
		t.Errorf("GetPixel(8,8) = %v, want transparent (outside rect)", got)
	}
	if c.path.elements == nil {
		t.Fatalf("current path was cleared by FillRect")
	}
}

func TestStrokeRectPaintsOutlineOnly(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetStrokeColor(RGB(9, 9, 9))
	c.SetLineWidth(2)

	if err := c.StrokeRect(2, 2, 6, 6); err != nil {
		t.Fatalf("StrokeRect: %v", err)
	}

	if got := c.Surface().GetPixel(2, 5); got != RGB(9, 9, 9) {
		t.Errorf("GetPixel(2,5) on stroked edge = %v, want RGB(9,9,9)", got)
	}
	if got := c.Surface().GetPixel(5, 5); got.A != 0 {
		t.Errorf("GetPixel(5,5) inside unstroked interior = %v, want transparent", got)
	}
}

func TestClearRectIgnoresFillPaintAndAlpha(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetFillColor(RGB(255, 0, 0))
	if err := c.FillRect(0, 0, 10, 10); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	c.SetGlobalAlpha(0.5)

	if err := c.ClearRect(2, 2, 4, 4); err != nil {
		t.Fatalf("ClearRect: %v", err)
	}

	if got := c.Surface().GetPixel(3, 3); got != Transparent {
		t.Errorf("GetPixel(3,3) after ClearRect = %v, want Transparent", got)
	}
	if got := c.Surface().GetPixel(0, 0); got != RGB(255, 0, 0) {
		t.Errorf("GetPixel(0,0) outside ClearRect = %v, want RGB(255,0,0)", got)
	}
}
