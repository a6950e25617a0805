package collisions

// System bundles the spatial index with the set of tracked bodies and
// exposes the per-frame pipeline: mutate body transforms, Update to refit
// the index, then Potentials/Collide (or CheckAll) to find overlaps.
//
// Not safe for concurrent use.
type System struct {
	tree   *Tree
	bodies []Body // insertion order, for deterministic iteration
	resp   Response
}

// NewSystem creates an empty collision system.
func NewSystem() *System {
	return &System{tree: NewTree()}
}

// Insert starts tracking a body. Inserting a body that is already tracked
// returns ErrAlreadyIndexed.
func (s *System) Insert(b Body) error {
	if err := s.tree.Insert(b); err != nil {
		return err
	}
	s.bodies = append(s.bodies, b)
	return nil
}

// Remove stops tracking a body. Removing an untracked body returns
// ErrNotIndexed and changes nothing.
func (s *System) Remove(b Body) error {
	if err := s.tree.Remove(b); err != nil {
		return err
	}
	for i, other := range s.bodies {
		if other == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			break
		}
	}
	return nil
}

// Update refits the index for every tracked body whose unpadded extent
// escaped its indexed box. Call once per frame after moving bodies.
func (s *System) Update() {
	for _, b := range s.bodies {
		_, _ = s.tree.Refit(b) // tracked bodies are always indexed
	}
}

// Count returns the number of tracked bodies.
func (s *System) Count() int { return s.tree.Count() }

// Bodies returns the tracked bodies in insertion order. The slice is
// owned by the system.
func (s *System) Bodies() []Body { return s.bodies }

// Potentials returns the broad-phase candidate set for b: every tracked
// body whose padded box overlaps b's, excluding b itself.
func (s *System) Potentials(b Body) []Body {
	return s.tree.Potentials(b)
}

// Query returns every tracked body whose padded box overlaps the given
// box.
func (s *System) Query(box Box) []Body {
	var out []Body
	s.tree.Query(box, func(b Body) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Collide runs the exact narrow-phase test on a pair. See Test.
func (s *System) Collide(a, b Body, resp *Response) bool {
	return Test(a, b, resp)
}

// CheckAll runs the full pipeline over every tracked body: broad-phase
// candidates per body, then the narrow phase on each candidate. fn is
// invoked once per colliding ordered pair, so an overlapping pair is
// reported twice, once from each side, with opposite normals. The
// response passed to fn is reused across calls; copy what you keep.
func (s *System) CheckAll(fn func(resp *Response)) {
	for _, a := range s.bodies {
		s.tree.Query(a.BBox(), func(b Body) bool {
			if b != a && Test(a, b, &s.resp) {
				fn(&s.resp)
			}
			return true
		})
	}
}

// CheckOne runs broad and narrow phase for a single body. fn is invoked
// once per body colliding with it; the response is reused across calls.
func (s *System) CheckOne(a Body, fn func(resp *Response)) {
	s.tree.Query(a.BBox(), func(b Body) bool {
		if b != a && Test(a, b, &s.resp) {
			fn(&s.resp)
		}
		return true
	})
}
