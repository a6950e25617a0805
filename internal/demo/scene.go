package demo

import (
	"math"
	"math/rand"
	"time"

	collisions "github.com/alastairdglennie/detect-collisions"
)

// randomScene generates a mix of circles, regular polygons, and points
// spread across the world. A zero seed means time-based.
func randomScene(count int, seed int64) []collisions.Body {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bodies := make([]collisions.Body, 0, count)
	for i := 0; i < count; i++ {
		id := uint64(i + 1)
		x := 10 + rng.Float64()*(worldWidth-20)
		y := 10 + rng.Float64()*(worldHeight-20)

		switch i % 3 {
		case 0:
			c, err := collisions.NewCircle(id, x, y, 2+rng.Float64()*4)
			if err != nil {
				continue
			}
			c.SetPadding(1)
			bodies = append(bodies, c)
		case 1:
			sides := 3 + rng.Intn(4)
			p, err := collisions.NewPolygon(id, x, y, regularPolygon(sides, 3+rng.Float64()*4))
			if err != nil {
				continue
			}
			p.SetAngle(rng.Float64() * 2 * math.Pi)
			p.SetPadding(1)
			bodies = append(bodies, p)
		default:
			pt := collisions.NewPoint(id, x, y)
			pt.SetPadding(1)
			bodies = append(bodies, pt)
		}
	}
	return bodies
}

// regularPolygon returns the local points of a regular n-gon with the
// given circumradius, centered on the body position.
func regularPolygon(sides int, radius float64) []collisions.Vector {
	points := make([]collisions.Vector, sides)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = collisions.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return points
}

// randomVelocity derives a deterministic per-body velocity from its ID so
// scene files replay identically.
func randomVelocity(id uint64) collisions.Vector {
	rng := rand.New(rand.NewSource(int64(id)))
	a := rng.Float64() * 2 * math.Pi
	speed := 5 + rng.Float64()*15
	return collisions.Vector{X: speed * math.Cos(a), Y: speed * math.Sin(a)}
}
