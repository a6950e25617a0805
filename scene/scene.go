// Package scene loads collision bodies from YAML scene files.
//
// A scene file lists bodies by kind:
//
//	bodies:
//	  - kind: circle
//	    id: 1
//	    pos: [30, 20]
//	    radius: 5
//	    scale: [2]
//	    padding: 1
//	  - kind: polygon
//	    id: 2
//	    pos: [60, 40]
//	    points: [[0, 0], [10, 0], [10, 10], [0, 10]]
//	    angle: 0.5
//	    scale: [1, 2]
//	  - kind: point
//	    id: 3
//	    pos: [5, 5]
package scene

import (
	"fmt"
	"os"

	collisions "github.com/alastairdglennie/detect-collisions"
	"gopkg.in/yaml.v3"
)

// bodyDef is the YAML shape of one body entry.
type bodyDef struct {
	Kind    string       `yaml:"kind"`
	ID      uint64       `yaml:"id"`
	Pos     [2]float64   `yaml:"pos"`
	Radius  float64      `yaml:"radius,omitempty"`
	Points  [][2]float64 `yaml:"points,omitempty"`
	Angle   float64      `yaml:"angle,omitempty"`
	Scale   []float64    `yaml:"scale,omitempty"` // [s] for circles, [sx, sy] for polygons
	Padding float64      `yaml:"padding,omitempty"`
}

type sceneDef struct {
	Bodies []bodyDef `yaml:"bodies"`
}

// Load reads a YAML scene file and builds its bodies.
func Load(path string) ([]collisions.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	bodies, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return bodies, nil
}

// Parse builds bodies from YAML scene data. Construction fails fast: the
// first invalid body aborts the whole scene.
func Parse(data []byte) ([]collisions.Body, error) {
	var def sceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	bodies := make([]collisions.Body, 0, len(def.Bodies))
	for i, bd := range def.Bodies {
		b, err := buildBody(bd)
		if err != nil {
			return nil, fmt.Errorf("body %d (kind %q): %w", i, bd.Kind, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func buildBody(bd bodyDef) (collisions.Body, error) {
	if bd.Padding < 0 {
		return nil, fmt.Errorf("padding %g is negative: %w", bd.Padding, collisions.ErrInvalidGeometry)
	}

	switch bd.Kind {
	case "circle":
		c, err := collisions.NewCircle(bd.ID, bd.Pos[0], bd.Pos[1], bd.Radius)
		if err != nil {
			return nil, err
		}
		if len(bd.Scale) > 0 {
			c.SetScale(bd.Scale[0])
		}
		c.SetPadding(bd.Padding)
		return c, nil

	case "polygon":
		points := make([]collisions.Vector, len(bd.Points))
		for i, pt := range bd.Points {
			points[i] = collisions.Vector{X: pt[0], Y: pt[1]}
		}
		p, err := collisions.NewPolygon(bd.ID, bd.Pos[0], bd.Pos[1], points)
		if err != nil {
			return nil, err
		}
		p.SetAngle(bd.Angle)
		switch len(bd.Scale) {
		case 0:
		case 1:
			p.SetScale(bd.Scale[0], bd.Scale[0])
		default:
			p.SetScale(bd.Scale[0], bd.Scale[1])
		}
		p.SetPadding(bd.Padding)
		return p, nil

	case "point":
		pt := collisions.NewPoint(bd.ID, bd.Pos[0], bd.Pos[1])
		pt.SetPadding(bd.Padding)
		return pt, nil

	default:
		return nil, fmt.Errorf("unknown body kind %q: %w", bd.Kind, collisions.ErrInvalidGeometry)
	}
}
