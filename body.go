// Package collisions detects overlap between 2D bodies (circles, convex
// polygons, points) using a two-phase pipeline: a dynamic bounding-volume
// tree prunes the all-pairs search to a small candidate set, and a
// separating-axis test determines collision, contact normal, and
// penetration depth for each candidate pair.
//
// The package is fully synchronous and intended for a per-frame
// "move bodies, update index, query, test" cycle. Concurrent mutation
// requires external locking.
package collisions

// BodyType identifies the shape variant of a Body.
type BodyType int

const (
	CircleBody BodyType = iota
	PolygonBody
	PointBody
)

// String returns the lowercase variant name.
func (t BodyType) String() string {
	switch t {
	case CircleBody:
		return "circle"
	case PolygonBody:
		return "polygon"
	case PointBody:
		return "point"
	}
	return "unknown"
}

// Body is a shape tracked by the collision system. The concrete variants
// are *Circle, *Polygon, and *Point; the set is closed.
//
// Transform mutation is eager: every setter recomputes the cached bounding
// box (and world vertices for polygons) immediately, so BBox is always a
// superset of the body's true extent inflated by padding.
type Body interface {
	// ID returns the caller-assigned numeric identifier.
	ID() uint64

	// Type returns the shape variant.
	Type() BodyType

	// Position returns the body's position.
	Position() Vector

	// SetPosition moves the body to (x, y).
	SetPosition(x, y float64)

	// Move translates the body by (dx, dy).
	Move(dx, dy float64)

	// Padding returns the bounding-box inflation. Padding gives the
	// spatial index hysteresis: a body that moves within its padded box
	// does not need to be reinserted.
	Padding() float64

	// SetPadding sets the bounding-box inflation. Negative values are
	// clamped to zero.
	SetPadding(p float64)

	// BBox returns the current padded bounding box.
	BBox() Box

	// extent returns the true (unpadded) bounding box.
	extent() Box

	// leaf and setLeaf manage the non-owning handle into the spatial
	// index's node arena. Unexported: only this package's tree may
	// implement or touch them, which keeps the variant set closed.
	leaf() int32
	setLeaf(h int32)
}

// body carries the fields every variant shares. Concrete shapes embed it
// and call its recompute hooks from their setters.
type body struct {
	id      uint64
	pos     Vector
	padding float64
	raw     Box   // true extent, no padding
	box     Box   // raw inflated by padding; what the index stores
	node    int32 // arena handle, nullNode when not indexed
}

func (b *body) ID() uint64       { return b.id }
func (b *body) Position() Vector { return b.pos }
func (b *body) Padding() float64 { return b.padding }
func (b *body) BBox() Box        { return b.box }
func (b *body) extent() Box      { return b.raw }
func (b *body) leaf() int32      { return b.node }
func (b *body) setLeaf(h int32)  { b.node = h }
