package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/vmath"
)

// View is the camera and target surface for one frame
type View struct {
	Pos     vmath.Vec2
	Heading float64
	Pitch   float64

	FOV  float64
	Rays int

	Width, Height float64 // Surface pixels
}

// Draw is one visible sprite with its screen command
type Draw struct {
	Entity   component.Renderable
	Distance float64
	Bearing  float64
	Ray      int
	Command  Command
}

type rankedSprite struct {
	entity component.Renderable
	dist   float64
}

// Composite orders entities far to near and keeps those inside the frustum and
// not hidden behind the wall recorded in depths at their ray column
func Composite(entities []component.Renderable, v View, depths []float64) []Draw {
	ranked := make([]rankedSprite, 0, len(entities))
	for _, e := range entities {
		ranked = append(ranked, rankedSprite{entity: e, dist: vmath.Distance(e.Position(), v.Pos)})
	}
	// Painter's order: farthest first
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist > ranked[j].dist
	})

	draws := make([]Draw, 0, len(ranked))
	for _, r := range ranked {
		// Degenerate: sprite on the eye point has no bearing
		if r.dist <= parameter.RayEpsilon || r.dist >= parameter.SpriteFarPlane {
			continue
		}

		bearing := vmath.NormalizeAngle(r.entity.Position().Sub(v.Pos).Angle() - v.Heading)
		if math.Abs(bearing) >= v.FOV/2 {
			continue
		}

		ray := int(math.Round((bearing/v.FOV + 0.5) * float64(v.Rays)))
		if len(depths) > 0 {
			ray = min(max(ray, 0), len(depths)-1)
			if r.dist >= depths[ray] {
				continue
			}
		}

		draws = append(draws, Draw{
			Entity:   r.entity,
			Distance: r.dist,
			Bearing:  bearing,
			Ray:      ray,
			Command:  spriteCommand(r.entity, bearing, r.dist, v),
		})
	}
	return draws
}

// spriteCommand sizes each kind inversely to distance around the horizon line
func spriteCommand(e component.Renderable, bearing, dist float64, v View) Command {
	screenX := (bearing/(v.FOV/2)*0.5 + 0.5) * v.Width
	size := v.Height / dist
	top := v.Height/2 - size/2 + v.Pitch

	switch s := e.(type) {
	case component.Goal:
		return Rect(screenX-size/4, top-size/2, size/2, size*1.5, s.Color.Opaque())
	case component.Enemy:
		return Rect(screenX-size/3, top+size/4, size*0.6, size*0.6, component.ColorEnemy.Opaque())
	case component.Item:
		return Disc(screenX, top+size/2, size/6, s.Color.Opaque())
	default:
		return Command{}
	}
}
