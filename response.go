package collisions

// Response describes the result of the last successful overlap test it was
// passed to. It is caller-allocated and reused across many tests to avoid
// per-test allocation; its fields are meaningful only when the
// accompanying boolean result was true, and must not be read otherwise.
type Response struct {
	// A and B are the tested bodies, in the order they were passed.
	A, B Body

	// Overlap is the penetration depth along the minimum axis. Zero means
	// the shapes are exactly touching, which counts as a collision.
	Overlap float64

	// OverlapN is the unit normal of minimum penetration, oriented from A
	// toward B.
	OverlapN Vector

	// OverlapV is OverlapN scaled by Overlap: the smallest translation
	// that separates B from A.
	OverlapV Vector

	// AInB and BInA report whether one body's projected extent lies
	// entirely inside the other's on every tested axis.
	AInB, BInA bool
}

// Clear resets the response to its zero state.
func (r *Response) Clear() {
	*r = Response{}
}
