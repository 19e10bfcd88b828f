package input

// Intent is the per-frame control snapshot consumed by the engine
type Intent struct {
	Move  int     // +1 forward, -1 back, 0 idle
	Turn  float64 // Held turn axis: -1 left, +1 right
	Yaw   float64 // Immediate heading change in radians from mouse or swipe
	Pitch float64 // Immediate pitch change in pixels, positive looks up
	Title bool    // Return to the title screen
	Quit  bool
}

// Idle reports whether the intent carries no input
func (i Intent) Idle() bool {
	return i == Intent{}
}
