package collisions

import (
	"math"
	"testing"
)

const tol = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func mustCircle(t *testing.T, id uint64, x, y, r float64) *Circle {
	t.Helper()
	c, err := NewCircle(id, x, y, r)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	return c
}

func mustPolygon(t *testing.T, id uint64, x, y float64, points []Vector) *Polygon {
	t.Helper()
	p, err := NewPolygon(id, x, y, points)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

func squarePoints() []Vector {
	return []Vector{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestCircleCircleDepth(t *testing.T) {
	tests := []struct {
		name    string
		dist    float64
		r1, r2  float64
		collide bool
		depth   float64
	}{
		{"overlapping", 7, 5, 3, true, 1},
		{"touching", 8, 5, 3, true, 0},
		{"separated", 9, 5, 3, false, 0},
		{"contained", 1, 5, 2, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCircle(t, 1, 0, 0, tt.r1)
			b := mustCircle(t, 2, tt.dist, 0, tt.r2)
			var resp Response
			got := Test(a, b, &resp)
			if got != tt.collide {
				t.Fatalf("Test = %v, want %v", got, tt.collide)
			}
			if !got {
				return
			}
			if !approx(resp.Overlap, tt.depth) {
				t.Errorf("Overlap = %g, want %g", resp.Overlap, tt.depth)
			}
			if !approx(resp.OverlapN.X, 1) || !approx(resp.OverlapN.Y, 0) {
				t.Errorf("OverlapN = %+v, want (1, 0)", resp.OverlapN)
			}
			if !approx(resp.OverlapV.X, tt.depth) {
				t.Errorf("OverlapV.X = %g, want %g", resp.OverlapV.X, tt.depth)
			}
		})
	}
}

func TestCircleCircleContainment(t *testing.T) {
	small := mustCircle(t, 1, 1, 0, 2)
	big := mustCircle(t, 2, 0, 0, 5)

	var resp Response
	if !Test(small, big, &resp) {
		t.Fatal("expected collision")
	}
	if !resp.AInB {
		t.Error("AInB = false, want true (small circle inside big)")
	}
	if resp.BInA {
		t.Error("BInA = true, want false")
	}
}

func TestCoincidentCenters(t *testing.T) {
	a := mustCircle(t, 1, 3, 3, 2)
	b := mustCircle(t, 2, 3, 3, 5)

	var resp Response
	if !Test(a, b, &resp) {
		t.Fatal("coincident circles must collide")
	}
	if !approx(resp.Overlap, 7) {
		t.Errorf("Overlap = %g, want 7 (sum of radii)", resp.Overlap)
	}
	if !approx(resp.OverlapN.X, 1) || !approx(resp.OverlapN.Y, 0) {
		t.Errorf("OverlapN = %+v, want the fixed (1, 0) axis", resp.OverlapN)
	}
	if !resp.AInB {
		t.Error("AInB = false, want true")
	}
	if resp.BInA {
		t.Error("BInA = true, want false")
	}
}

func TestPointInCircle(t *testing.T) {
	pt := NewPoint(1, 0, 0)
	c := mustCircle(t, 2, 0, 0, 5)

	var resp Response
	if !Test(pt, c, &resp) {
		t.Fatal("point at circle center must collide")
	}
	if !resp.AInB {
		t.Error("AInB = false, want true (point fully inside)")
	}
	if !approx(resp.Overlap, 5) {
		t.Errorf("Overlap = %g, want 5", resp.Overlap)
	}
}

func TestScaledCircle(t *testing.T) {
	a := mustCircle(t, 1, 0, 0, 2)
	a.SetScale(3) // effective radius 6
	b := mustCircle(t, 2, 7, 0, 1)

	var resp Response
	if !Test(a, b, &resp) {
		t.Fatal("scaled circles touching at distance 7 must collide")
	}
	if !approx(resp.Overlap, 0) {
		t.Errorf("Overlap = %g, want 0 (touching)", resp.Overlap)
	}
}

func TestTouchingSquareCircle(t *testing.T) {
	// Square [0,10]x[0,10] and a circle at (15,5) radius 5: exactly
	// touching at x=10. Touching counts as colliding with zero depth.
	sq := mustPolygon(t, 1, 0, 0, squarePoints())
	c := mustCircle(t, 2, 15, 5, 5)

	var resp Response
	if !Test(sq, c, &resp) {
		t.Fatal("touching square and circle must collide")
	}
	if !approx(resp.Overlap, 0) {
		t.Errorf("Overlap = %g, want 0", resp.Overlap)
	}
	if !approx(resp.OverlapN.X, 1) || !approx(resp.OverlapN.Y, 0) {
		t.Errorf("OverlapN = %+v, want (1, 0)", resp.OverlapN)
	}

	// One unit further and they are disjoint.
	c.SetPosition(16, 5)
	if Test(sq, c, nil) {
		t.Error("separated square and circle must not collide")
	}
}

func TestPolygonPolygonMTV(t *testing.T) {
	a := mustPolygon(t, 1, 0, 0, squarePoints())
	b := mustPolygon(t, 2, 8, 0, squarePoints())

	var resp Response
	if !Test(a, b, &resp) {
		t.Fatal("overlapping squares must collide")
	}
	if !approx(resp.Overlap, 2) {
		t.Errorf("Overlap = %g, want 2", resp.Overlap)
	}
	if !approx(resp.OverlapN.X, 1) || !approx(resp.OverlapN.Y, 0) {
		t.Errorf("OverlapN = %+v, want (1, 0)", resp.OverlapN)
	}
	if !approx(resp.OverlapV.X, 2) || !approx(resp.OverlapV.Y, 0) {
		t.Errorf("OverlapV = %+v, want (2, 0)", resp.OverlapV)
	}
	if resp.AInB || resp.BInA {
		t.Errorf("containment = (%v, %v), want (false, false)", resp.AInB, resp.BInA)
	}
}

func TestPolygonContainsPolygon(t *testing.T) {
	outer := mustPolygon(t, 1, 0, 0, squarePoints())
	inner := mustPolygon(t, 2, 4, 4, []Vector{{0, 0}, {2, 0}, {2, 2}, {0, 2}})

	var resp Response
	if !Test(outer, inner, &resp) {
		t.Fatal("nested squares must collide")
	}
	if resp.AInB {
		t.Error("AInB = true, want false")
	}
	if !resp.BInA {
		t.Error("BInA = false, want true (inner square contained)")
	}
}

func TestSymmetry(t *testing.T) {
	circle := mustCircle(t, 1, 6, 3, 4)
	square := mustPolygon(t, 2, 0, 0, squarePoints())
	offSquare := mustPolygon(t, 3, 8, 3, squarePoints())
	point := NewPoint(4, 5, 5)
	far := mustCircle(t, 5, 100, 100, 1)

	bodies := []Body{circle, square, offSquare, point, far}
	for i, a := range bodies {
		for j, b := range bodies {
			if i == j {
				continue
			}
			var ra, rb Response
			gotAB := Test(a, b, &ra)
			gotBA := Test(b, a, &rb)
			if gotAB != gotBA {
				t.Errorf("Test(%d,%d) = %v but Test(%d,%d) = %v", i, j, gotAB, j, i, gotBA)
				continue
			}
			if !gotAB {
				continue
			}
			if !approx(ra.OverlapN.X, -rb.OverlapN.X) || !approx(ra.OverlapN.Y, -rb.OverlapN.Y) {
				t.Errorf("normals not opposite: %+v vs %+v (bodies %d, %d)", ra.OverlapN, rb.OverlapN, i, j)
			}
			if !approx(ra.Overlap, rb.Overlap) {
				t.Errorf("depths differ: %g vs %g (bodies %d, %d)", ra.Overlap, rb.Overlap, i, j)
			}
			if ra.AInB != rb.BInA || ra.BInA != rb.AInB {
				t.Errorf("containment flags not mirrored (bodies %d, %d)", i, j)
			}
		}
	}
}

func TestDegenerateEdgeSkipped(t *testing.T) {
	// Duplicate vertex: one zero-length edge contributes no axis, but the
	// test still works off the remaining normals.
	p := mustPolygon(t, 1, 0, 0, []Vector{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}})
	c := mustCircle(t, 2, 5, 5, 2)

	var resp Response
	if !Test(p, c, &resp) {
		t.Fatal("circle inside degenerate-edged square must collide")
	}
	if !resp.BInA {
		t.Error("BInA = false, want true (circle inside polygon)")
	}
	if math.IsNaN(resp.OverlapN.X) || math.IsNaN(resp.OverlapN.Y) {
		t.Errorf("OverlapN = %+v contains NaN", resp.OverlapN)
	}
}

func TestCollapsedPolygons(t *testing.T) {
	// Polygons with all vertices coincident enumerate no axis at all.
	// Distinct collapsed points are disjoint even when padding makes
	// their boxes overlap; coinciding points touch with zero depth.
	origin := []Vector{{0, 0}, {0, 0}, {0, 0}}
	a := mustPolygon(t, 1, 0, 0, origin)
	b := mustPolygon(t, 2, 3, 0, origin)

	if Test(a, b, nil) {
		t.Error("distinct collapsed polygons must not collide")
	}
	a.SetPadding(5)
	b.SetPadding(5)
	if Test(a, b, nil) {
		t.Error("padding changed the outcome for disjoint collapsed polygons")
	}

	b.SetPosition(0, 0)
	var resp Response
	if !Test(a, b, &resp) {
		t.Fatal("coinciding collapsed polygons must collide")
	}
	if !approx(resp.Overlap, 0) {
		t.Errorf("Overlap = %g, want 0", resp.Overlap)
	}
	if math.IsNaN(resp.OverlapN.X) || math.IsNaN(resp.OverlapN.Y) {
		t.Errorf("OverlapN = %+v contains NaN", resp.OverlapN)
	}
}

func TestCollapsedPolygonOnCircleCenter(t *testing.T) {
	// A collapsed polygon sitting exactly on the circle's center leaves
	// every axis degenerate; the coincident-centers policy applies.
	p := mustPolygon(t, 1, 5, 5, []Vector{{0, 0}, {0, 0}, {0, 0}})
	c := mustCircle(t, 2, 5, 5, 2)

	var resp Response
	if !Test(p, c, &resp) {
		t.Fatal("collapsed polygon at circle center must collide")
	}
	if !approx(resp.Overlap, 2) {
		t.Errorf("Overlap = %g, want 2 (scaled radius)", resp.Overlap)
	}
	if !resp.AInB {
		t.Error("AInB = false, want true (point polygon inside circle)")
	}
	if resp.BInA {
		t.Error("BInA = true, want false")
	}
}

func TestRotatedScaledPolygon(t *testing.T) {
	// Unit square scaled 2x in x and rotated 90°: occupies roughly
	// [-1,0]x[0,2] around its position.
	p := mustPolygon(t, 1, 0, 0, []Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	p.SetScale(2, 1)
	p.SetAngle(math.Pi / 2)

	c := mustCircle(t, 2, 0, 3, 1) // touches the rotated top edge at y=2
	if !Test(p, c, nil) {
		t.Error("circle touching rotated square must collide")
	}

	c.SetPosition(0, 3.5)
	if Test(p, c, nil) {
		t.Error("circle past rotated square must not collide")
	}
}

func TestDisjointBoxesShortCircuit(t *testing.T) {
	a := mustPolygon(t, 1, 0, 0, squarePoints())
	b := mustPolygon(t, 2, 100, 100, squarePoints())
	var resp Response
	resp.Overlap = 42 // sentinel: a false result must not touch resp
	if Test(a, b, &resp) {
		t.Fatal("distant squares must not collide")
	}
	if resp.Overlap != 42 {
		t.Error("failed test modified the response")
	}
}
