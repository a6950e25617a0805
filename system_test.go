package collisions

import (
	"errors"
	"testing"
)

func TestSystemPipeline(t *testing.T) {
	s := NewSystem()
	a := mustCircle(t, 1, 0, 0, 5)
	b := mustCircle(t, 2, 100, 0, 5)
	if err := s.Insert(a); err != nil {
		t.Fatalf("Insert(a): %v", err)
	}
	if err := s.Insert(b); err != nil {
		t.Fatalf("Insert(b): %v", err)
	}

	hits := 0
	s.CheckOne(a, func(resp *Response) { hits++ })
	if hits != 0 {
		t.Fatalf("distant bodies reported %d hits, want 0", hits)
	}

	// Move b next to a; the index must reflect the new position after
	// Update, and the narrow phase must fire.
	b.SetPosition(7, 0)
	s.Update()

	var got Response
	s.CheckOne(a, func(resp *Response) {
		hits++
		got = *resp
	})
	if hits != 1 {
		t.Fatalf("overlapping bodies reported %d hits, want 1", hits)
	}
	if got.A != a || got.B != b {
		t.Error("response bodies not in caller order")
	}
	if !approx(got.Overlap, 3) {
		t.Errorf("Overlap = %g, want 3", got.Overlap)
	}
}

func TestSystemCheckAllSymmetric(t *testing.T) {
	s := NewSystem()
	a := mustCircle(t, 1, 0, 0, 5)
	b := mustCircle(t, 2, 7, 0, 5)
	for _, body := range []Body{a, b} {
		if err := s.Insert(body); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	type hit struct {
		a, b   Body
		normal Vector
	}
	var hits []hit
	s.CheckAll(func(resp *Response) {
		hits = append(hits, hit{resp.A, resp.B, resp.OverlapN})
	})

	if len(hits) != 2 {
		t.Fatalf("CheckAll reported %d hits, want 2 (one per ordering)", len(hits))
	}
	if hits[0].a != hits[1].b || hits[0].b != hits[1].a {
		t.Error("hits are not the two orderings of the same pair")
	}
	if !approx(hits[0].normal.X, -hits[1].normal.X) || !approx(hits[0].normal.Y, -hits[1].normal.Y) {
		t.Errorf("normals not opposite: %+v vs %+v", hits[0].normal, hits[1].normal)
	}
}

func TestSystemRemove(t *testing.T) {
	s := NewSystem()
	a := mustCircle(t, 1, 0, 0, 5)
	b := mustCircle(t, 2, 3, 0, 5)
	c := mustCircle(t, 3, 6, 0, 5)
	for _, body := range []Body{a, b, c} {
		if err := s.Insert(body); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	if err := s.Remove(b); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(b); !errors.Is(err, ErrNotIndexed) {
		t.Errorf("second Remove error = %v, want ErrNotIndexed", err)
	}
	if got := s.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if got := s.Bodies(); len(got) != 2 || containsBody(got, b) {
		t.Errorf("Bodies = %v, want a and c only", got)
	}

	if got := s.Potentials(a); !containsBody(got, c) || containsBody(got, b) {
		t.Errorf("Potentials(a) = %v, want [c]", got)
	}
}

func TestSystemQuery(t *testing.T) {
	s := NewSystem()
	near := mustCircle(t, 1, 5, 5, 2)
	far := mustCircle(t, 2, 50, 50, 2)
	for _, body := range []Body{near, far} {
		if err := s.Insert(body); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got := s.Query(Box{0, 0, 10, 10})
	if len(got) != 1 || got[0] != near {
		t.Errorf("Query = %v, want [near]", got)
	}
}
