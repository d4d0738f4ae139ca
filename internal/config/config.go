// Package config provides YAML-based game configuration loading and
// difficulty management for the fruit catch game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnknownPreset is returned when a difficulty preset name is not recognised.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// CatchConfig contains all configuration for the fruit catch game.
type CatchConfig struct {
	Playfield  PlayfieldConfig   `yaml:"playfield"`
	Basket     BasketConfig      `yaml:"basket"`
	Fruit      FruitConfig       `yaml:"fruit"`
	Catalog    []FruitTypeConfig `yaml:"catalog"`
	Session    SessionConfig     `yaml:"session"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical simulation area, in playfield units.
// Surfaces scale this rectangle to their own resolution.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BasketConfig defines the player's basket.
type BasketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Units per frame unit
	Margin float64 `yaml:"margin"` // Gap between basket bottom and playfield bottom
}

// FruitConfig defines falling fruit geometry.
type FruitConfig struct {
	Size float64 `yaml:"size"`
}

// FruitTypeConfig is one catalog entry.
type FruitTypeConfig struct {
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
	Color  string `yaml:"color"`
}

// SessionConfig defines per-session rules.
type SessionConfig struct {
	Lives     int           `yaml:"lives"`
	FrameUnit time.Duration `yaml:"frame_unit"` // Elapsed time that equals one unit of speed
}

// DifficultyConfig defines the time-driven difficulty ramp.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	StartLevel   int           `yaml:"start_level"`
	Interval     time.Duration `yaml:"interval"` // Session time per level
	BaseMaxSpeed float64       `yaml:"base_max_speed"`
	SpeedStep    float64       `yaml:"speed_step"`
	SpeedCap     float64       `yaml:"speed_cap"`
	BaseSpawn    time.Duration `yaml:"base_spawn"`
	SpawnStep    time.Duration `yaml:"spawn_step"`
	SpawnFloor   time.Duration `yaml:"spawn_floor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI string to a preset. The empty string means
// "no preset" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// StartLevelForPreset returns the level a preset starts the session at.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 7
	default:
		return 1
	}
}

// Describe returns a short menu description of the preset.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "start at level 1, speed up every interval"
	case DifficultyNormal:
		return "start at level 3"
	case DifficultyHard:
		return "start at level 7"
	case DifficultyFixed:
		return "no progression"
	default:
		return ""
	}
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c CatchConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	check(c.Basket.Width > 0 && c.Basket.Height > 0,
		"basket size must be positive, got %gx%g", c.Basket.Width, c.Basket.Height)
	check(c.Basket.Width <= c.Playfield.Width,
		"basket width %g exceeds playfield width %g", c.Basket.Width, c.Playfield.Width)
	check(c.Basket.Speed >= 0, "basket speed must not be negative, got %g", c.Basket.Speed)
	check(c.Fruit.Size > 0, "fruit size must be positive, got %g", c.Fruit.Size)
	check(c.Fruit.Size <= c.Playfield.Width,
		"fruit size %g exceeds playfield width %g", c.Fruit.Size, c.Playfield.Width)
	check(len(c.Catalog) > 0, "catalog must list at least one fruit")
	for i, ft := range c.Catalog {
		check(ft.Name != "", "catalog[%d] has no name", i)
		check(ft.Points >= 0, "catalog[%d] %q has negative points %d", i, ft.Name, ft.Points)
	}
	check(c.Session.Lives > 0, "lives must be positive, got %d", c.Session.Lives)
	check(c.Session.FrameUnit > 0, "frame_unit must be positive, got %v", c.Session.FrameUnit)

	d := c.Difficulty
	check(d.StartLevel >= 1, "start_level must be at least 1, got %d", d.StartLevel)
	check(d.Interval > 0, "difficulty interval must be positive, got %v", d.Interval)
	check(d.BaseMaxSpeed >= 0 && d.SpeedCap >= d.BaseMaxSpeed,
		"speed range invalid: base %g cap %g", d.BaseMaxSpeed, d.SpeedCap)
	check(d.SpawnFloor > 0 && d.BaseSpawn >= d.SpawnFloor,
		"spawn range invalid: base %v floor %v", d.BaseSpawn, d.SpawnFloor)
	check(d.SpeedStep >= 0 && d.SpawnStep >= 0, "difficulty steps must not be negative")

	return errors.Join(errs...)
}
