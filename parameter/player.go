package parameter

// Player motion
const (
	// PlayerSpeed is forward/back speed in grid units per second
	PlayerSpeed = 3.5

	// PlayerRotSpeed is keyboard turn rate in radians per second
	PlayerRotSpeed = 2.8

	// PlayerStartX, PlayerStartY is the spawn point, center of the maze origin cell
	PlayerStartX = 1.5
	PlayerStartY = 1.5
)
