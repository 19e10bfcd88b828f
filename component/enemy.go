package component

import "github.com/lixenwraith/vi-maze/vmath"

// Enemy pursues the player waypoint by waypoint
type Enemy struct {
	Pos    vmath.Vec2
	Target vmath.Vec2 // Current waypoint, a cell center or a nudge point
}

// NewEnemy places an enemy at rest on pos
func NewEnemy(pos vmath.Vec2) Enemy {
	return Enemy{Pos: pos, Target: pos}
}

// Position implements Renderable
func (e Enemy) Position() vmath.Vec2 { return e.Pos }

func (Enemy) renderable() {}
