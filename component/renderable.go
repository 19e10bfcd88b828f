package component

import (
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Renderable is the closed set of sprite entities: Item, Enemy, Goal
// Consumers dispatch with a type switch
type Renderable interface {
	Position() vmath.Vec2
	renderable()
}

// Entity colors
var (
	ColorCoin      = core.MustHex("#ffd700")
	ColorTimeBonus = core.MustHex("#00ffff")
	ColorGoal      = core.MustHex("#ff00ff")
	ColorEnemy     = core.MustHex("#ff4d4d")
	ColorPlayer    = core.MustHex("#00ff00")
)
