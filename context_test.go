package gg

import "testing"

func TestContextFillUsesFillPaint(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetFillColor(RGB(10, 20, 30))
	if err := c.MoveTo(1, 1); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := c.LineTo(8, 1); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := c.LineTo(8, 8); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := c.LineTo(1, 8); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	c.ClosePath()
	c.Fill()

	if got := c.Surface().GetPixel(4, 4); got != RGB(10, 20, 30) {
		t.Errorf("GetPixel(4,4) = %v, want RGB(10,20,30)", got)
	}
}

func TestContextSaveRestoreRoundTrips(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.SetFillColor(RGB(1, 2, 3))
	c.Translate(5, 5)
	c.SetLineWidth(7)

	c.Save()
	c.SetFillColor(RGB(9, 9, 9))
	c.Translate(100, 100)
	c.SetLineWidth(1)
	c.Restore()

	if got := c.fillPaint.(SolidPaint).Color; got != RGB(1, 2, 3) {
		t.Errorf("fillPaint after Restore = %v, want RGB(1,2,3)", got)
	}
	if c.ctm != Translate(5, 5) {
		t.Errorf("ctm after Restore = %v, want Translate(5,5)", c.ctm)
	}
	if c.stroke.Width != 7 {
		t.Errorf("stroke.Width after Restore = %v, want 7", c.stroke.Width)
	}
}

func TestContextRestoreWithoutSaveIsNoop(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.SetFillColor(RGB(5, 5, 5))
	c.Restore() // must not panic
	if got := c.fillPaint.(SolidPaint).Color; got != RGB(5, 5, 5) {
		t.Errorf("fillPaint after unmatched Restore = %v, want unchanged RGB(5,5,5)", got)
	}
}

func TestContextClipRestrictsFill(t *testing.T) {
	c := newTestContext(t, 10, 10)
	if err := c.Rect(2, 2, 4, 4); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.Clip()
	c.BeginPath()
	if err := c.Rect(0, 0, 10, 10); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	c.SetFillColor(RGB(255, 0, 0))
	c.Fill()

	if got := c.Surface().GetPixel(3, 3); got != RGB(255, 0, 0) {
		t.Errorf("GetPixel(3,3) inside clip = %v, want RGB(255,0,0)", got)
	}
	if got := c.Surface().GetPixel(0, 0); got.A != 0 {
		t.Errorf("GetPixel(0,0) outside clip = %v, want transparent", got)
	}
}

func TestContextIsPointInPath(t *testing.T) {
	c := newTestContext(t, 10, 10)
	if err := c.Rect(2, 2, 4, 4); err != nil {
		t.Fatalf("Rect: %v", err)
	}
	if !c.IsPointInPath(3, 3) {
		t.Error("IsPointInPath(3,3) = false, want true (inside rect)")
	}
	if c.IsPointInPath(9, 9) {
		t.Error("IsPointInPath(9,9) = true, want false (outside rect)")
	}
}

func TestContextIsPointInStroke(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.SetLineWidth(4)
	if err := c.MoveTo(2, 10); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := c.LineTo(18, 10); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if !c.IsPointInStroke(10, 10) {
		t.Error("IsPointInStroke(10,10) = false, want true (on the stroked line)")
	}
	if c.IsPointInStroke(10, 19) {
		t.Error("IsPointInStroke(10,19) = true, want false (far from the line)")
	}
}
