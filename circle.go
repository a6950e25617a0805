package collisions

// Circle is a body with a center, radius, and uniform scale.
type Circle struct {
	body
	radius float64
	scale  float64
}

// NewCircle creates a circle with the given identifier, center, and radius.
// Scale starts at 1 and padding at 0. A negative radius is invalid.
func NewCircle(id uint64, x, y, radius float64) (*Circle, error) {
	if radius < 0 {
		return nil, invalidf("circle radius %g is negative", radius)
	}
	c := &Circle{radius: radius, scale: 1}
	c.id = id
	c.pos = Vector{x, y}
	c.node = nullNode
	c.recompute()
	return c, nil
}

// Type returns CircleBody.
func (c *Circle) Type() BodyType { return CircleBody }

// Radius returns the unscaled radius.
func (c *Circle) Radius() float64 { return c.radius }

// Scale returns the uniform scale factor.
func (c *Circle) Scale() float64 { return c.scale }

// ScaledRadius returns radius * scale, the effective radius used by the
// narrow phase.
func (c *Circle) ScaledRadius() float64 { return c.radius * c.scale }

// SetPosition moves the circle's center to (x, y).
func (c *Circle) SetPosition(x, y float64) {
	c.pos = Vector{x, y}
	c.recompute()
}

// Move translates the circle's center by (dx, dy).
func (c *Circle) Move(dx, dy float64) {
	c.pos.X += dx
	c.pos.Y += dy
	c.recompute()
}

// SetRadius changes the radius. Negative values are clamped to zero.
func (c *Circle) SetRadius(r float64) {
	if r < 0 {
		r = 0
	}
	c.radius = r
	c.recompute()
}

// SetScale changes the uniform scale factor. Negative values are clamped
// to zero.
func (c *Circle) SetScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.scale = s
	c.recompute()
}

// SetPadding sets the bounding-box inflation. Negative values are clamped
// to zero.
func (c *Circle) SetPadding(p float64) {
	if p < 0 {
		p = 0
	}
	c.padding = p
	c.recompute()
}

func (c *Circle) recompute() {
	r := c.ScaledRadius()
	c.raw = Box{c.pos.X - r, c.pos.Y - r, c.pos.X + r, c.pos.Y + r}
	c.box = c.raw.Pad(c.padding)
}
