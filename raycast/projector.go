// Package raycast projects the maze into vertical wall strips, one ray per screen column
package raycast

import (
	"math"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Frame is one cast: per-ray angle, raw hit distance, projected wall height and shade
// Depths doubles as the sprite occlusion buffer for the same frame
type Frame struct {
	Angles  []float64
	Depths  []float64
	Heights []float64
	Shades  []float64 // 0-255 flat brightness per column
}

// Projector casts fixed-step rays against a grid
type Projector struct {
	FOV      float64
	Rays     int
	Step     float64
	MaxDepth float64
	Epsilon  float64

	BaseBrightness float64
	Falloff        float64

	frame Frame
}

// NewProjector creates a projector with default step, depth and shading
func NewProjector(fov float64, rays int) *Projector {
	if rays < 1 {
		rays = 1
	}
	return &Projector{
		FOV:            fov,
		Rays:           rays,
		Step:           parameter.RayStep,
		MaxDepth:       parameter.RayMaxDepth,
		Epsilon:        parameter.RayEpsilon,
		BaseBrightness: parameter.WallBaseBrightness,
		Falloff:        parameter.WallFalloff,
	}
}

// CastFrame casts a full frame with default parameters into fresh buffers
func CastFrame(pos vmath.Vec2, heading, fov float64, rays int, screenHeight float64, g *maze.Grid) Frame {
	return NewProjector(fov, rays).Cast(pos, heading, screenHeight, g)
}

// Cast fills and returns the projector's frame buffers; contents are valid until the next Cast
func (p *Projector) Cast(pos vmath.Vec2, heading, screenHeight float64, g *maze.Grid) Frame {
	p.resize()
	f := p.frame

	for i := 0; i < p.Rays; i++ {
		angle := heading - p.FOV/2 + (float64(i)/float64(p.Rays))*p.FOV
		dist := CastRay(pos, angle, p.Step, p.MaxDepth, g)

		f.Angles[i] = angle
		f.Depths[i] = dist
		// Perpendicular distance removes fisheye
		f.Heights[i] = screenHeight / (dist*math.Cos(angle-heading) + p.Epsilon)
		f.Shades[i] = math.Max(0, p.BaseBrightness-dist*p.Falloff)
	}

	return f
}

func (p *Projector) resize() {
	if len(p.frame.Depths) == p.Rays {
		return
	}
	p.frame = Frame{
		Angles:  make([]float64, p.Rays),
		Depths:  make([]float64, p.Rays),
		Heights: make([]float64, p.Rays),
		Shades:  make([]float64, p.Rays),
	}
}

// CastRay marches from pos along angle in fixed steps
// Returns the accumulated distance at the first wall cell entered, or once maxDepth is reached
// Cells outside the grid count as walls
func CastRay(pos vmath.Vec2, angle, step, maxDepth float64, g *maze.Grid) float64 {
	dx, dy := math.Cos(angle)*step, math.Sin(angle)*step
	x, y := pos.X, pos.Y
	dist := 0.0

	for dist < maxDepth {
		x += dx
		y += dy
		dist += step
		if g.IsWall(int(math.Floor(x)), int(math.Floor(y))) {
			break
		}
	}
	return dist
}
