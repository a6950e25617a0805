package collisions

import "testing"

func TestBoxOps(t *testing.T) {
	a := Box{0, 0, 10, 10}
	b := Box{5, 5, 15, 15}
	c := Box{11, 0, 20, 10}

	if !a.Intersects(b) {
		t.Error("overlapping boxes reported disjoint")
	}
	if a.Intersects(c) {
		t.Error("disjoint boxes reported overlapping")
	}
	// Touching edges count as intersecting.
	if !a.Intersects(Box{10, 0, 20, 10}) {
		t.Error("touching boxes reported disjoint")
	}

	if !a.Contains(Box{2, 2, 8, 8}) {
		t.Error("inner box reported not contained")
	}
	if a.Contains(b) {
		t.Error("overlapping box reported contained")
	}

	u := a.Union(b)
	if u != (Box{0, 0, 15, 15}) {
		t.Errorf("Union = %+v, want {0 0 15 15}", u)
	}
	if got := a.Area(); got != 100 {
		t.Errorf("Area = %g, want 100", got)
	}
	if got := a.Pad(2); got != (Box{-2, -2, 12, 12}) {
		t.Errorf("Pad = %+v, want {-2 -2 12 12}", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v, ok := (Vector{3, 4}).Normalize()
	if !ok {
		t.Fatal("Normalize reported a degenerate axis for (3,4)")
	}
	if !approx(v.X, 0.6) || !approx(v.Y, 0.8) {
		t.Errorf("Normalize = %+v, want (0.6, 0.8)", v)
	}

	if _, ok := (Vector{}).Normalize(); ok {
		t.Error("zero vector normalized without error")
	}
}

func TestVectorPerp(t *testing.T) {
	// Perp of a counter-clockwise square's bottom edge points outward
	// (downward in this coordinate system).
	p := (Vector{10, 0}).Perp()
	if p != (Vector{0, -10}) {
		t.Errorf("Perp = %+v, want (0, -10)", p)
	}
	if got := p.Dot(Vector{10, 0}); got != 0 {
		t.Errorf("Perp not perpendicular: dot = %g", got)
	}
}
