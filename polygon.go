package collisions

import "math"

// Polygon is a convex body defined by local points around its position,
// with a rotation angle and independent x/y scale. World vertices and
// outward edge normals are cached and recomputed on every transform
// change.
//
// Convexity is assumed, not checked: the separating-axis test is only
// exact for convex shapes.
type Polygon struct {
	body
	points  []Vector // local, as given
	angle   float64  // radians
	scaleX  float64
	scaleY  float64
	verts   []Vector // world space
	normals []Vector // outward unit edge normals; zero for degenerate edges
	center  Vector   // mean of world vertices
}

// NewPolygon creates a polygon positioned at (x, y) from at least 3 local
// points. Angle starts at 0, scale at (1, 1), padding at 0.
func NewPolygon(id uint64, x, y float64, points []Vector) (*Polygon, error) {
	p := &Polygon{scaleX: 1, scaleY: 1}
	p.id = id
	p.pos = Vector{x, y}
	p.node = nullNode
	if err := p.SetPoints(points); err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns PolygonBody.
func (p *Polygon) Type() BodyType { return PolygonBody }

// Points returns the local point list. The slice is owned by the polygon;
// use SetPoints to change it.
func (p *Polygon) Points() []Vector { return p.points }

// Vertices returns the cached world-space vertices. Valid until the next
// transform change.
func (p *Polygon) Vertices() []Vector { return p.verts }

// Angle returns the rotation in radians.
func (p *Polygon) Angle() float64 { return p.angle }

// ScaleXY returns the independent x and y scale factors.
func (p *Polygon) ScaleXY() (sx, sy float64) { return p.scaleX, p.scaleY }

// Center returns the mean of the world vertices, used to orient overlap
// normals.
func (p *Polygon) Center() Vector { return p.center }

// SetPoints replaces the local point list. Fewer than 3 points is invalid
// and leaves the polygon unchanged.
func (p *Polygon) SetPoints(points []Vector) error {
	if len(points) < 3 {
		return invalidf("polygon needs at least 3 points, got %d", len(points))
	}
	p.points = append(p.points[:0], points...)
	if cap(p.verts) < len(points) {
		p.verts = make([]Vector, len(points))
		p.normals = make([]Vector, len(points))
	}
	p.verts = p.verts[:len(points)]
	p.normals = p.normals[:len(points)]
	p.recompute()
	return nil
}

// SetPosition moves the polygon to (x, y).
func (p *Polygon) SetPosition(x, y float64) {
	p.pos = Vector{x, y}
	p.recompute()
}

// Move translates the polygon by (dx, dy).
func (p *Polygon) Move(dx, dy float64) {
	p.pos.X += dx
	p.pos.Y += dy
	p.recompute()
}

// SetAngle sets the rotation in radians.
func (p *Polygon) SetAngle(a float64) {
	p.angle = a
	p.recompute()
}

// SetScale sets independent x and y scale factors. Negative values are
// clamped to zero.
func (p *Polygon) SetScale(sx, sy float64) {
	if sx < 0 {
		sx = 0
	}
	if sy < 0 {
		sy = 0
	}
	p.scaleX, p.scaleY = sx, sy
	p.recompute()
}

// SetPadding sets the bounding-box inflation. Negative values are clamped
// to zero.
func (p *Polygon) SetPadding(pad float64) {
	if pad < 0 {
		pad = 0
	}
	p.padding = pad
	p.recompute()
}

// recompute rebuilds world vertices (scale, then rotate, then translate),
// edge normals, the centroid, and the bounding box.
func (p *Polygon) recompute() {
	sin, cos := math.Sincos(p.angle)

	var sum Vector
	for i, pt := range p.points {
		sx := pt.X * p.scaleX
		sy := pt.Y * p.scaleY
		v := Vector{
			X: p.pos.X + sx*cos - sy*sin,
			Y: p.pos.Y + sx*sin + sy*cos,
		}
		p.verts[i] = v
		sum = sum.Add(v)
	}
	p.center = sum.Scale(1 / float64(len(p.verts)))

	raw := Box{p.verts[0].X, p.verts[0].Y, p.verts[0].X, p.verts[0].Y}
	for _, v := range p.verts[1:] {
		raw.MinX = math.Min(raw.MinX, v.X)
		raw.MinY = math.Min(raw.MinY, v.Y)
		raw.MaxX = math.Max(raw.MaxX, v.X)
		raw.MaxY = math.Max(raw.MaxY, v.Y)
	}
	p.raw = raw
	p.box = raw.Pad(p.padding)

	// Degenerate (zero-length) edges get a zero normal; the narrow phase
	// skips those axes.
	n := len(p.verts)
	for i := 0; i < n; i++ {
		edge := p.verts[(i+1)%n].Sub(p.verts[i])
		normal, ok := edge.Perp().Normalize()
		if !ok {
			normal = Vector{}
		}
		p.normals[i] = normal
	}
}
