package parameter

import "math"

// Projection
const (
	// FOV is the horizontal field of view in radians
	FOV = math.Pi / 3

	// RayCount is the number of rays per frame on pixel surfaces
	RayCount = 300
	// RayCountTouch is the reduced ray count for touch devices
	RayCountTouch = 160

	// RayStep is the march increment in grid units
	// Wall hits are accurate to within one step
	RayStep = 0.05

	// RayMaxDepth caps the march distance
	RayMaxDepth = 20.0

	// RayEpsilon keeps projected height finite at zero distance
	RayEpsilon = 0.001

	// SpriteFarPlane culls sprites at or beyond this distance, tighter than RayMaxDepth
	SpriteFarPlane = 15.0
)

// Shading
const (
	// WallBaseBrightness is the shade at distance 0 (0-255 scale)
	WallBaseBrightness = 200.0

	// WallFalloff is brightness lost per grid unit
	WallFalloff = 15.0
)

// Look
const (
	// PitchLimit bounds the vertical look offset in pixels
	PitchLimit = 250.0

	// PitchMouseFactor converts mouse dy pixels to pitch pixels
	PitchMouseFactor = 1.2

	// PitchSwipeFactor converts swipe dy pixels to pitch pixels
	PitchSwipeFactor = 0.8

	// SwipeTurnFactor converts swipe dx pixels to radians
	SwipeTurnFactor = 0.003

	// SensitivityScale converts the sensitivity setting to radians per mouse pixel
	SensitivityScale = 0.0002

	// SensitivityDefault is the sensitivity setting when none is configured
	SensitivityDefault = 10.0
)
