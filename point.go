package collisions

// Point is a body with position but no extent. The narrow phase treats it
// as a circle of radius zero, so it shares the circle's implementation.
type Point struct {
	Circle
}

// NewPoint creates a point at (x, y) with the given identifier.
func NewPoint(id uint64, x, y float64) *Point {
	p := &Point{}
	p.id = id
	p.pos = Vector{x, y}
	p.scale = 1
	p.node = nullNode
	p.recompute()
	return p
}

// Type returns PointBody.
func (p *Point) Type() BodyType { return PointBody }
