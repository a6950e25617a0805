// Package draw renders collision bodies through a path-drawing interface
// and provides a terminal canvas implementation with 2x vertical
// resolution using half-block characters.
package draw

import (
	"math"

	collisions "github.com/alastairdglennie/detect-collisions"
)

// Path is the drawing capability a renderer must provide: move-to,
// line-to, and arc. The terminal Canvas implements it; any vector or
// raster backend can too.
type Path interface {
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	// LineTo draws a line from the current position to (x, y).
	LineTo(x, y float64)
	// Arc draws a circular arc centered at (cx, cy) with radius r from
	// angle start to angle end (radians, counter-clockwise).
	Arc(cx, cy, r, start, end float64)
	// Close draws a line back to the start of the current subpath.
	Close()
}

// Trace draws a body's outline onto p: circles and points as full arcs,
// polygons as closed line loops over their world vertices.
func Trace(b collisions.Body, p Path) {
	switch v := b.(type) {
	case *collisions.Circle:
		pos := v.Position()
		p.Arc(pos.X, pos.Y, v.ScaledRadius(), 0, 2*math.Pi)
	case *collisions.Point:
		pos := v.Position()
		p.Arc(pos.X, pos.Y, 0, 0, 2*math.Pi)
	case *collisions.Polygon:
		verts := v.Vertices()
		p.MoveTo(verts[0].X, verts[0].Y)
		for _, vert := range verts[1:] {
			p.LineTo(vert.X, vert.Y)
		}
		p.Close()
	}
}

// TraceBBox draws a body's padded bounding box onto p as a closed
// rectangle. Useful for visualizing the broad phase.
func TraceBBox(b collisions.Body, p Path) {
	box := b.BBox()
	p.MoveTo(box.MinX, box.MinY)
	p.LineTo(box.MaxX, box.MinY)
	p.LineTo(box.MaxX, box.MaxY)
	p.LineTo(box.MinX, box.MaxY)
	p.Close()
}
