package parameter

// Session presets
const (
	// PresetMapSize is the side length for easy and normal
	PresetMapSize = 21

	// PresetItemCount is the coin count for easy and normal
	PresetItemCount = 15

	// PresetStartTime is the starting clock in seconds for easy and normal
	PresetStartTime = 60.0

	// PresetEnemyCount is the enemy count for easy and normal
	PresetEnemyCount = 1
)
