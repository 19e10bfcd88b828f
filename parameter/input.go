package parameter

import "time"

// Keyboard
const (
	// KeyHoldWindow keeps a key down after its last repeat
	// Terminals never report key release
	KeyHoldWindow = 150 * time.Millisecond

	// KeyInitialHold keeps a fresh press down across the terminal auto-repeat delay
	KeyInitialHold = 500 * time.Millisecond

	// PitchKeyStep is the pitch change per look key press in pixels
	PitchKeyStep = 20.0
)

// Touch zones as fractions of surface width
const (
	// TouchForwardZone is the left edge band that walks forward
	TouchForwardZone = 0.4
	// TouchTurnZone is where the turn band starts
	TouchTurnZone = 0.6
	// TouchTurnRightZone splits the turn band into left and right
	TouchTurnRightZone = 0.8
)

// Terminal mouse cells are converted to approximate pixels for look sensitivity
const (
	TerminalCellPixelsX = 8.0
	TerminalCellPixelsY = 16.0
)
