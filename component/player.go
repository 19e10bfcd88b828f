package component

import "github.com/lixenwraith/vi-maze/vmath"

// Player is the first-person viewer
// Pitch is a render-only vertical look offset in pixels, no collision effect
type Player struct {
	Pos     vmath.Vec2
	Heading float64 // Radians, 0 = +x
	Pitch   float64
}
