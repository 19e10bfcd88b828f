package parameter

import "time"

// Items
const (
	// CoinScore is added per coin pickup
	CoinScore = 100

	// TimeBonusSeconds is added to the clock per time bonus pickup
	TimeBonusSeconds = 25.0

	// TimeBonusCount is the number of time bonus items per session
	TimeBonusCount = 2

	// CoinSpawnMinDistance and TimeBonusSpawnMinDistance are path distances from the player start
	CoinSpawnMinDistance      = 2
	TimeBonusSpawnMinDistance = 5

	// PickupRadius collects an item when the player is closer than this
	PickupRadius = 0.5

	// MessageDuration is how long a pickup message stays on the HUD
	MessageDuration = 800 * time.Millisecond
)

// Goal
const (
	// GoalRadius wins the session when the player is closer than this and the goal is visible
	GoalRadius = 0.7

	// GoalRevealElapsed is when the goal appears in normal mode
	GoalRevealElapsed = 30 * time.Second
)
