package ui

import "testing"

func TestLayoutTopmostWins(t *testing.T) {
	var l Layout
	l.Add(Rect{X: 0, Y: 0, W: 10, H: 6}, Hit{Zone: ZoneDay, Day: 3, Slot: -1})
	l.Add(Rect{X: 1, Y: 2, W: 8, H: 1}, Hit{Zone: ZoneDay, Day: 3, Slot: 0})

	if h := l.At(4, 2); h.Slot != 0 {
		t.Fatalf("expected slot 0, got %+v", h)
	}
	if h := l.At(4, 4); h.Zone != ZoneDay || h.Slot != -1 {
		t.Fatalf("expected bare day hit, got %+v", h)
	}
	if h := l.At(10, 0); h.Zone != ZoneNone {
		t.Fatalf("expected miss at right edge, got %+v", h)
	}
}

func TestLayoutMerge(t *testing.T) {
	var inner Layout
	inner.Add(Rect{X: 0, Y: 0, W: 2, H: 2}, Hit{Zone: ZoneTrash, Slot: -1})

	var outer Layout
	outer.Merge(inner, 5, 7)
	if h := outer.At(6, 8); h.Zone != ZoneTrash {
		t.Fatalf("expected trash after merge, got %+v", h)
	}
	if h := outer.At(0, 0); h.Zone != ZoneNone {
		t.Fatalf("expected miss at origin, got %+v", h)
	}
	if _, ok := outer.Find(ZoneTrash, 0, 0); !ok {
		t.Fatalf("expected to find trash region")
	}
}
