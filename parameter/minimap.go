package parameter

// Minimap layout in surface pixels for full-resolution surfaces
const (
	// MinimapSpan is the target map width; tile size is Span / map width
	MinimapSpan = 160.0
	// MinimapMinTile is the smallest tile size
	MinimapMinTile = 2.0
	// MinimapMargin is the offset from the bottom-right surface corner
	MinimapMargin = 20.0
	// MinimapPad is the backdrop border around the tiles
	MinimapPad = 5.0
	// MinimapMarker is the player and goal marker size
	MinimapMarker = 4.0
	// MinimapEnemyMarker is the enemy marker size
	MinimapEnemyMarker = 3.0
	// MinimapBackdropAlpha is the backdrop opacity
	MinimapBackdropAlpha = 0.8
)

// PitchReferenceHeight is the surface height at which pitch pixels apply unscaled
// Smaller surfaces scale pitch proportionally
const PitchReferenceHeight = 720.0
