package component

import (
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Goal is the exit; visibility is decided by the session, not stored here
type Goal struct {
	Pos   vmath.Vec2
	Color core.RGB
}

// Position implements Renderable
func (g Goal) Position() vmath.Vec2 { return g.Pos }

func (Goal) renderable() {}
