package config

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-maze/parameter"
)

// Controls tunes player motion and look
type Controls struct {
	PlayerSpeed float64 `toml:"player_speed"`
	RotSpeed    float64 `toml:"rot_speed"`
	Sensitivity float64 `toml:"sensitivity"` // Slider value, scaled by parameter.SensitivityScale
	PitchFactor float64 `toml:"pitch_factor"`
	PitchLimit  float64 `toml:"pitch_limit"`
}

// DefaultControls returns the stock tuning
func DefaultControls() Controls {
	return Controls{
		PlayerSpeed: parameter.PlayerSpeed,
		RotSpeed:    parameter.PlayerRotSpeed,
		Sensitivity: parameter.SensitivityDefault,
		PitchFactor: parameter.PitchMouseFactor,
		PitchLimit:  parameter.PitchLimit,
	}
}

// YawPerPixel converts the sensitivity setting to radians per mouse pixel
func (c Controls) YawPerPixel() float64 {
	return c.Sensitivity * parameter.SensitivityScale
}

// Validate rejects non-positive tuning
func (c Controls) Validate() error {
	switch {
	case c.PlayerSpeed <= 0:
		return errors.Errorf("player speed %g must be positive", c.PlayerSpeed)
	case c.RotSpeed <= 0:
		return errors.Errorf("rotation speed %g must be positive", c.RotSpeed)
	case c.Sensitivity <= 0:
		return errors.Errorf("sensitivity %g must be positive", c.Sensitivity)
	case c.PitchLimit < 0:
		return errors.Errorf("pitch limit %g is negative", c.PitchLimit)
	}
	return nil
}
