// Package config resolves session presets, player controls and their file and
// environment overrides
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/parameter"
)

// Mode selects a preset and the goal reveal rule
type Mode uint8

const (
	ModeEasy Mode = iota
	ModeNormal
	ModeCustom
)

// MaxMapSize bounds custom maps
const MaxMapSize = 201

var modeNames = map[Mode]string{
	ModeEasy:   "easy",
	ModeNormal: "normal",
	ModeCustom: "custom",
}

// String returns the mode name used in flags and files
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode resolves a mode name, case-insensitive
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeEasy, errors.Errorf("unknown mode %q", s)
}

// Session is the per-game setup
type Session struct {
	Mode       Mode    `toml:"-"`
	MapSize    int     `toml:"map_size"`
	EnemyCount int     `toml:"enemy_count"`
	EnemySpeed float64 `toml:"enemy_speed"`
	ItemCount  int     `toml:"item_count"`
	StartTime  float64 `toml:"start_time"` // Seconds
	Braiding   float64 `toml:"braiding"`   // 0 = perfect maze
	Seed       int64   `toml:"seed"`       // 0 = time-seeded
}

// Preset returns the fixed setup for a mode
// Custom starts from the easy values and is expected to be overridden
func Preset(m Mode) Session {
	s := Session{
		Mode:       m,
		MapSize:    parameter.PresetMapSize,
		EnemyCount: parameter.PresetEnemyCount,
		EnemySpeed: parameter.EnemySpeedEasy,
		ItemCount:  parameter.PresetItemCount,
		StartTime:  parameter.PresetStartTime,
	}
	if m == ModeNormal {
		s.EnemySpeed = parameter.EnemySpeedNormal
	}
	return s
}

// GoalAlwaysVisible reports whether the goal skips the reveal delay
func (s Session) GoalAlwaysVisible() bool {
	return s.Mode != ModeNormal
}

// Validate rejects setups the generator or session cannot honor
func (s Session) Validate() error {
	switch {
	case s.MapSize < maze.MinSize:
		return errors.Errorf("map size %d below minimum %d", s.MapSize, maze.MinSize)
	case s.MapSize > MaxMapSize:
		return errors.Errorf("map size %d above maximum %d", s.MapSize, MaxMapSize)
	case s.MapSize%2 == 0:
		return errors.Errorf("map size %d must be odd", s.MapSize)
	case s.EnemyCount < 0:
		return errors.Errorf("enemy count %d is negative", s.EnemyCount)
	case s.ItemCount < 0:
		return errors.Errorf("item count %d is negative", s.ItemCount)
	case s.EnemySpeed <= 0:
		return errors.Errorf("enemy speed %g must be positive", s.EnemySpeed)
	case s.StartTime <= 0:
		return errors.Errorf("start time %g must be positive", s.StartTime)
	case s.Braiding < 0 || s.Braiding > 1:
		return errors.Errorf("braiding %g outside [0, 1]", s.Braiding)
	}
	return nil
}
