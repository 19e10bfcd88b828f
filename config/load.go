package config

import (
	"bytes"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Environment overrides, applied after the file
const (
	EnvMode        = "VI_MAZE_MODE"
	EnvMapSize     = "VI_MAZE_MAP_SIZE"
	EnvEnemyCount  = "VI_MAZE_ENEMY_COUNT"
	EnvEnemySpeed  = "VI_MAZE_ENEMY_SPEED"
	EnvItemCount   = "VI_MAZE_ITEM_COUNT"
	EnvStartTime   = "VI_MAZE_START_TIME"
	EnvBraiding    = "VI_MAZE_BRAIDING"
	EnvSeed        = "VI_MAZE_SEED"
	EnvSensitivity = "VI_MAZE_SENSITIVITY"
)

// File is the on-disk layout
//
//	mode = "custom"
//	[session]
//	map_size = 31
//	[controls]
//	sensitivity = 12
//	[keys]
//	w = "forward"
type File struct {
	Mode     string            `toml:"mode"`
	Session  Session           `toml:"session"`
	Controls Controls          `toml:"controls"`
	Keys     map[string]string `toml:"keys"`
}

// Resolved is the merged result of preset, file and environment
type Resolved struct {
	Session  Session
	Controls Controls
	Keys     map[string]string // Key name to action name overrides
}

// ParseFile decodes TOML data over base; fields absent from data keep base values
// Unknown fields are rejected
func ParseFile(data []byte, base File) (*File, error) {
	f := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "config parse")
	}
	return &f, nil
}

// LoadDotEnv loads a .env file into the process environment without overriding
// variables already set; a missing file is not an error
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

// Load resolves the setup for mode: preset, then the optional TOML file at path,
// then VI_MAZE_* environment variables, then validation
// A mode named in the file or environment takes precedence over the argument
func Load(mode Mode, path string) (*Resolved, error) {
	var data []byte
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		var head struct {
			Mode string `toml:"mode"`
		}
		if err := toml.Unmarshal(data, &head); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
		if head.Mode != "" {
			if mode, err = ParseMode(head.Mode); err != nil {
				return nil, errors.Wrapf(err, "%s", path)
			}
		}
	}
	if v := os.Getenv(EnvMode); v != "" {
		m, err := ParseMode(v)
		if err != nil {
			return nil, errors.Wrap(err, EnvMode)
		}
		mode = m
	}

	f, err := ParseFile(data, File{Session: Preset(mode), Controls: DefaultControls()})
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	r := &Resolved{Session: f.Session, Controls: f.Controls, Keys: f.Keys}
	// Presets are fixed apart from the seed
	if mode != ModeCustom {
		r.Session = Preset(mode)
		r.Session.Seed = f.Session.Seed
	}

	if err := applyEnv(r, mode == ModeCustom); err != nil {
		return nil, err
	}
	if err := r.Session.Validate(); err != nil {
		return nil, errors.Wrap(err, "session")
	}
	if err := r.Controls.Validate(); err != nil {
		return nil, errors.Wrap(err, "controls")
	}
	return r, nil
}

// applyEnv overlays environment values; session shape overrides need custom mode,
// seed and sensitivity apply to every mode
func applyEnv(r *Resolved, custom bool) error {
	if custom {
		if err := envInt(EnvMapSize, &r.Session.MapSize); err != nil {
			return err
		}
		if err := envInt(EnvEnemyCount, &r.Session.EnemyCount); err != nil {
			return err
		}
		if err := envFloat(EnvEnemySpeed, &r.Session.EnemySpeed); err != nil {
			return err
		}
		if err := envInt(EnvItemCount, &r.Session.ItemCount); err != nil {
			return err
		}
		if err := envFloat(EnvStartTime, &r.Session.StartTime); err != nil {
			return err
		}
		if err := envFloat(EnvBraiding, &r.Session.Braiding); err != nil {
			return err
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvSeed)
		}
		r.Session.Seed = seed
	}
	return envFloat(EnvSensitivity, &r.Controls.Sensitivity)
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrap(err, key)
	}
	*dst = f
	return nil
}
