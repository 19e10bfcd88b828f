package input

import "github.com/lixenwraith/vi-maze/parameter"

// Touch tracks a single-finger gesture
// Zones are picked on touch start: left band walks forward, right band turns.
// Dragging anywhere swipes the view
type Touch struct {
	Forward bool
	Turn    int // -1 left, +1 right

	lastX, lastY float64
	active       bool
}

// Start begins a gesture at (x, y) on a surface width pixels wide
func (t *Touch) Start(x, y, width float64) {
	t.lastX, t.lastY = x, y
	t.active = true
	if x < width*parameter.TouchForwardZone {
		t.Forward = true
	}
	if x > width*parameter.TouchTurnZone {
		if x > width*parameter.TouchTurnRightZone {
			t.Turn = 1
		} else {
			t.Turn = -1
		}
	}
}

// Move returns the swipe look deltas since the previous position
func (t *Touch) Move(x, y float64) (yaw, pitch float64) {
	if !t.active {
		return 0, 0
	}
	dx, dy := x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	return dx * parameter.SwipeTurnFactor, -dy * parameter.PitchSwipeFactor
}

// End releases all touch state
func (t *Touch) End() {
	*t = Touch{}
}

// Active reports whether a gesture is in progress
func (t *Touch) Active() bool {
	return t.active
}
