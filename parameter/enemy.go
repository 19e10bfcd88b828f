package parameter

// Enemy
const (
	// EnemySpeedEasy is movement speed in grid units per second for the easy preset
	EnemySpeedEasy = 1.0
	// EnemySpeedNormal is movement speed for the normal preset
	EnemySpeedNormal = 1.8

	// EnemySpawnMinDistance is the minimum path distance (cells) from the player start
	EnemySpawnMinDistance = 8

	// EnemyWaypointSnap snaps an enemy onto its waypoint and triggers replanning
	EnemyWaypointSnap = 0.1

	// EnemyArrivedEpsilon stops motion when this close to the waypoint
	EnemyArrivedEpsilon = 0.01

	// EnemyCatchRadius ends the session when the player is closer than this
	EnemyCatchRadius = 0.4
)
