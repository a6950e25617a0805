package collisions

import "math"

// Test is the narrow phase: an exact separating-axis overlap test for a
// pair of bodies, dispatched on the unordered pair of variants. Points are
// treated as circles of radius zero, so the three underlying cases are
// circle-circle, circle-polygon, and polygon-polygon.
//
// Test returns false as soon as any candidate axis separates the two
// shapes, so its cost is proportional to how quickly a separating axis is
// found, not to the total edge count. Touching shapes (zero overlap on
// every axis) count as colliding with depth 0.
//
// If resp is non-nil and the result is true, resp is filled with the
// normal, depth, and containment flags; on a false result resp is left
// untouched and must not be read.
func Test(a, b Body, resp *Response) bool {
	// Padded boxes are supersets of the true extents, so disjoint boxes
	// prove disjoint shapes.
	if !a.BBox().Intersects(b.BBox()) {
		return false
	}

	ca, aCircle := circleOf(a)
	cb, bCircle := circleOf(b)
	switch {
	case aCircle && bCircle:
		return testCircleCircle(a, b, ca, cb, resp)
	case aCircle:
		return testCirclePolygon(a, b, ca, b.(*Polygon), false, resp)
	case bCircle:
		return testCirclePolygon(a, b, cb, a.(*Polygon), true, resp)
	default:
		return testPolygonPolygon(a, b, a.(*Polygon), b.(*Polygon), resp)
	}
}

// circleOf returns the circle view of a body: circles as-is, points as
// their embedded zero-radius circle.
func circleOf(b Body) (*Circle, bool) {
	switch v := b.(type) {
	case *Circle:
		return v, true
	case *Point:
		return &v.Circle, true
	}
	return nil, false
}

// testCircleCircle uses the single candidate axis through both centers.
// Coincident centers leave that axis undefined; the shapes are then fully
// overlapping by definition, with a fixed (1, 0) normal and depth equal to
// the sum of the scaled radii.
func testCircleCircle(a, b Body, ca, cb *Circle, resp *Response) bool {
	ra := ca.ScaledRadius()
	rb := cb.ScaledRadius()
	d := cb.pos.Sub(ca.pos)
	sum := ra + rb
	distSq := d.LenSq()
	if distSq > sum*sum {
		return false
	}
	if resp == nil {
		return true
	}

	dist := math.Sqrt(distSq)
	normal := Vector{1, 0}
	depth := sum
	if dist > 0 {
		normal = d.Scale(1 / dist)
		depth = sum - dist
	}
	resp.A = a
	resp.B = b
	resp.Overlap = depth
	resp.OverlapN = normal
	resp.OverlapV = normal.Scale(depth)
	resp.AInB = dist+ra <= rb
	resp.BInA = dist+rb <= ra
	return true
}

// sat accumulates per-axis projection results and tracks the axis of
// minimum penetration. Ties keep the earliest axis (strict <), so the
// reported normal is deterministic: axes are examined in the order the
// shape pair enumerates them.
type sat struct {
	depth  float64
	normal Vector
	aInB   bool
	bInA   bool
	found  bool
}

func newSAT() sat {
	return sat{aInB: true, bInA: true}
}

// axis folds one candidate axis into the running result given both
// shapes' projected intervals. It reports false when the axis separates
// the shapes, which ends the whole test. A negative 1-D overlap means
// separation; zero means touching and still collides.
func (s *sat) axis(axis Vector, minA, maxA, minB, maxB float64) bool {
	overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
	if overlap < 0 {
		return false
	}
	s.aInB = s.aInB && minA >= minB && maxA <= maxB
	s.bInA = s.bInA && minB >= minA && maxB <= maxA
	if !s.found || overlap < s.depth {
		// Orient from A toward B by projected interval midpoints.
		if minA+maxA > minB+maxB {
			axis = axis.Scale(-1)
		}
		s.depth = overlap
		s.normal = axis
		s.found = true
	}
	return true
}

// fill writes the accumulated result for the pair (a, b). swapped means
// the accumulator ran with operands reversed relative to the caller's
// order, so the normal flips and the containment flags trade places.
// Callers must have resolved a result (s.found) before filling.
func (s *sat) fill(resp *Response, a, b Body, swapped bool) {
	if resp == nil {
		return
	}
	normal := s.normal
	aInB, bInA := s.aInB, s.bInA
	if swapped {
		normal = normal.Scale(-1)
		aInB, bInA = bInA, aInB
	}
	resp.A = a
	resp.B = b
	resp.Overlap = s.depth
	resp.OverlapN = normal
	resp.OverlapV = normal.Scale(s.depth)
	resp.AInB = aInB
	resp.BInA = bInA
}

// projectPolygon returns the min and max dot product of the world
// vertices with the axis.
func projectPolygon(verts []Vector, axis Vector) (min, max float64) {
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// projectCircle returns the center's projection minus and plus the
// scaled radius.
func projectCircle(c *Circle, axis Vector) (min, max float64) {
	d := c.pos.Dot(axis)
	r := c.ScaledRadius()
	return d - r, d + r
}

// testCirclePolygon enumerates the circle's axis (center toward the
// polygon's nearest vertex) first, then the polygon's edge normals in
// index order. The accumulator always runs with the circle as operand A;
// swapped restores the caller's order when filling the response.
//
// A zero-radius circle whose center coincides with the nearest vertex
// yields a zero-length circle axis; it is skipped rather than normalized,
// as are zero normals from degenerate polygon edges.
func testCirclePolygon(a, b Body, c *Circle, p *Polygon, swapped bool, resp *Response) bool {
	s := newSAT()

	if axis, ok := nearestVertexAxis(c, p); ok {
		minA, maxA := projectCircle(c, axis)
		minB, maxB := projectPolygon(p.verts, axis)
		if !s.axis(axis, minA, maxA, minB, maxB) {
			return false
		}
	}

	for _, axis := range p.normals {
		if axis == (Vector{}) {
			continue
		}
		minA, maxA := projectCircle(c, axis)
		minB, maxB := projectPolygon(p.verts, axis)
		if !s.axis(axis, minA, maxA, minB, maxB) {
			return false
		}
	}

	if !s.found {
		// Every axis was degenerate: the polygon has collapsed onto the
		// circle's center. Same policy as coincident circle centers:
		// fixed axis, depth equal to the scaled radius.
		r := c.ScaledRadius()
		s.depth = r
		s.normal = Vector{1, 0}
		s.aInB = r <= 0
		s.bInA = true
		s.found = true
	}

	s.fill(resp, a, b, swapped)
	return true
}

// nearestVertexAxis returns the unit axis from the circle's center to the
// polygon's nearest world vertex. ok is false when the center sits on
// that vertex and the axis is undefined.
func nearestVertexAxis(c *Circle, p *Polygon) (Vector, bool) {
	nearest := p.verts[0]
	best := nearest.Sub(c.pos).LenSq()
	for _, v := range p.verts[1:] {
		if d := v.Sub(c.pos).LenSq(); d < best {
			best = d
			nearest = v
		}
	}
	return nearest.Sub(c.pos).Normalize()
}

// testPolygonPolygon enumerates the first polygon's edge normals in index
// order, then the second's. Degenerate edges contribute no axis.
func testPolygonPolygon(a, b Body, pa, pb *Polygon, resp *Response) bool {
	s := newSAT()

	for _, axis := range pa.normals {
		if axis == (Vector{}) {
			continue
		}
		minA, maxA := projectPolygon(pa.verts, axis)
		minB, maxB := projectPolygon(pb.verts, axis)
		if !s.axis(axis, minA, maxA, minB, maxB) {
			return false
		}
	}
	for _, axis := range pb.normals {
		if axis == (Vector{}) {
			continue
		}
		minA, maxA := projectPolygon(pa.verts, axis)
		minB, maxB := projectPolygon(pb.verts, axis)
		if !s.axis(axis, minA, maxA, minB, maxB) {
			return false
		}
	}

	if !s.found {
		// Both polygons have collapsed to points, so no axis was
		// enumerated. Coinciding points touch; anything else is disjoint
		// no matter what the padded boxes say.
		if pa.verts[0].Sub(pb.verts[0]).LenSq() > 0 {
			return false
		}
		s.depth = 0
		s.normal = Vector{1, 0}
		s.found = true
	}

	s.fill(resp, a, b, false)
	return true
}
