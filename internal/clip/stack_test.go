package clip

import "testing"

func TestStackInitialState(t *testing.T) {
	s := NewStack(8, 8)
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
	if !s.Top().IsNoClipping() {
		t.Error("initial stack frame should have no clipping")
	}
}

func TestStackSaveRestore(t *testing.T) {
	s := NewStack(8, 8)
	s.Save()
	if s.Depth() != 2 {
		t.Errorf("Depth() after Save = %d, want 2", s.Depth())
	}

	s.Clip([][]Point{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}}, false)
	if s.IsVisible(6, 6) {
		t.Error("(6,6) should be clipped out after Clip")
	}

	s.Restore()
	if s.Depth() != 1 {
		t.Errorf("Depth() after Restore = %d, want 1", s.Depth())
	}
	if !s.IsVisible(6, 6) {
		t.Error("Restore should undo the clip pushed after Save")
	}
}

func TestStackRestoreWithoutSaveIsNoop(t *testing.T) {
	s := NewStack(4, 4)
	s.Restore()
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 (Restore with no matching Save is a no-op)", s.Depth())
	}
}

func TestStackClipIntersectsNotReplaces(t *testing.T) {
	s := NewStack(10, 10)
	s.Clip([][]Point{{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}}, false)
	s.Clip([][]Point{{{X: 3, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 3, Y: 10}, {X: 3, Y: 0}}}, false)

	if s.IsVisible(1, 5) {
		t.Error("(1,5) excluded by the second clip, should not be visible")
	}
	if s.IsVisible(8, 5) {
		t.Error("(8,5) excluded by the first clip, should not be visible")
	}
	if !s.IsVisible(4, 5) {
		t.Error("(4,5) is inside both clips, should be visible")
	}
}
