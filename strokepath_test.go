package gg

import "testing"

func TestFillOutlineTransformsToDeviceSpace(t *testing.T) {
	p := NewPath()
	_ = p.Rect(0, 0, 10, 10)

	ctm := Translate(5, 5)
	polys := fillOutline(p, ctm)
	if len(polys) != 1 {
		t.Fatalf("fillOutline() returned %d subpaths, want 1", len(polys))
	}
	if polys[0][0] != (Point{X: 5, Y: 5}) {
		t.Errorf("fillOutline()[0][0] = %v, want (5,5) after translation", polys[0][0])
	}
}

func TestStrokeOutlineProducesClosedPolygons(t *testing.T) {
	p := NewPath()
	_ = p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)

	style := DefaultStroke()
	outlines, _ := strokeOutline(p, style, Identity())
	if len(outlines) == 0 {
		t.Fatal("strokeOutline() returned no outlines for a simple line")
	}
	for _, o := range outlines {
		if len(o) < 3 {
			t.Errorf("stroke outline polygon has %d vertices, want at least 3 for a filled ring", len(o))
		}
	}
}

func TestStrokeOutlineHonorsDashPattern(t *testing.T) {
	p := NewPath()
	_ = p.MoveTo(0, 0)
	_ = p.LineTo(100, 0)

	style := DefaultStroke().WithDashPattern(5, 5)
	dashed, _ := strokeOutline(p, style, Identity())

	solid, _ := strokeOutline(p, DefaultStroke(), Identity())

	if len(dashed) <= len(solid) {
		t.Errorf("dashed stroke produced %d outline polygons, want more than the solid stroke's %d", len(dashed), len(solid))
	}
}

func TestStrokeOutlineAttenuatesSubPixelWidth(t *testing.T) {
	p := NewPath()
	_ = p.MoveTo(0, 5)
	_ = p.LineTo(10, 5)

	style := DefaultStroke()
	style.Width = 0.5
	outlines, alpha := strokeOutline(p, style, Identity())

	if len(outlines) == 0 {
		t.Fatal("strokeOutline() returned no outlines for a 0.5px-wide line")
	}
	if alpha != 0.5 {
		t.Errorf("alpha factor = %v, want 0.5 for a 0.5px stroke under an identity transform", alpha)
	}

	_, fullAlpha := strokeOutline(p, DefaultStroke(), Identity())
	if fullAlpha != 1 {
		t.Errorf("alpha factor = %v, want 1 for a 1px stroke", fullAlpha)
	}
}
