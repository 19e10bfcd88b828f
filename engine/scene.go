package engine

import (
	"github.com/lixenwraith/vi-maze/raycast"
	"github.com/lixenwraith/vi-maze/render"
)

// Viewport describes the presentation target for Scene
type Viewport struct {
	Width, Height float64
	PitchScale    float64 // Surface pixels per pitch pixel
	Minimap       render.Minimap
}

// Scene casts the frame from the player and assembles the full draw list
func (s *Session) Scene(p *raycast.Projector, vp Viewport) []render.Command {
	v := render.View{
		Pos:     s.Player.Pos,
		Heading: s.Player.Heading,
		Pitch:   s.Player.Pitch * vp.PitchScale,
		FOV:     p.FOV,
		Rays:    p.Rays,
		Width:   vp.Width,
		Height:  vp.Height,
	}

	frame := p.Cast(v.Pos, v.Heading, v.Height, s.Grid)
	sprites := render.Composite(s.Renderables(), v, frame.Depths)

	return render.BuildScene(render.Scene{
		View:        v,
		Frame:       frame,
		Sprites:     sprites,
		Grid:        s.Grid,
		Enemies:     s.EnemyPositions(),
		Goal:        s.Goal.Pos,
		GoalVisible: s.GoalVisible(),
	}, vp.Minimap)
}
