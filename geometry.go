package collisions

import "math"

// Vector is a 2D point or direction.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns the perpendicular of v. For a counter-clockwise polygon
// edge this is the outward-facing direction.
func (v Vector) Perp() Vector {
	return Vector{v.Y, -v.X}
}

// LenSq returns the squared length of v. Use this when comparing
// distances to avoid the sqrt cost.
func (v Vector) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vector) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v scaled to unit length. ok is false when v is too
// short to define a direction, in which case the zero vector is returned.
func (v Vector) Normalize() (n Vector, ok bool) {
	l := v.Len()
	if l < epsilon {
		return Vector{}, false
	}
	return Vector{v.X / l, v.Y / l}, true
}

// epsilon is the length below which an axis is considered degenerate and
// skipped as a separating-axis candidate.
const epsilon = 1e-12

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether b and o overlap. Touching edges count.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return b.MinX <= o.MinX && o.MaxX <= b.MaxX &&
		b.MinY <= o.MinY && o.MaxY <= b.MaxY
}

// Union returns the smallest box enclosing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Area returns the area of b.
func (b Box) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Pad returns b inflated by p on every side.
func (b Box) Pad(p float64) Box {
	return Box{b.MinX - p, b.MinY - p, b.MaxX + p, b.MaxY + p}
}
