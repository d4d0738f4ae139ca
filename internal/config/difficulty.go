package config

import (
	"math"
	"time"
)

// DifficultyController derives the difficulty level from accumulated session
// time and tracks the speed and spawn bands of the current level.
// Level is a step function: floor(T / interval) + startLevel. It only ever
// grows within a session; Reset starts a new one.
type DifficultyController struct {
	cfg         DifficultyConfig
	level       int
	maxSpeed    float64
	spawnPeriod time.Duration
}

// NewDifficultyController creates a controller positioned at the start level.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	d := &DifficultyController{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns to the start level.
func (d *DifficultyController) Reset() {
	d.apply(d.startLevel())
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Interval > 0
}

// LevelAt returns the level that corresponds to elapsed session time t.
func (d *DifficultyController) LevelAt(t time.Duration) int {
	if !d.IsEnabled() || t < 0 {
		return d.startLevel()
	}
	return int(t/d.cfg.Interval) + d.startLevel()
}

// Update recomputes the level for elapsed session time t.
// Returns true when the level increased and the bands changed.
func (d *DifficultyController) Update(t time.Duration) bool {
	level := d.LevelAt(t)
	if level <= d.level {
		return false
	}
	d.apply(level)
	return true
}

// Level returns the current difficulty level.
func (d *DifficultyController) Level() int {
	return d.level
}

// MaxSpeed returns the current maximum extra fruit speed.
func (d *DifficultyController) MaxSpeed() float64 {
	return d.maxSpeed
}

// SpawnPeriod returns the current time between spawns.
func (d *DifficultyController) SpawnPeriod() time.Duration {
	return d.spawnPeriod
}

// MaxSpeedFor returns min(base + (level-1) * step, cap).
func (d *DifficultyController) MaxSpeedFor(level int) float64 {
	steps := float64(max(level-1, 0))
	return math.Min(d.cfg.BaseMaxSpeed+steps*d.cfg.SpeedStep, d.cfg.SpeedCap)
}

// SpawnPeriodFor returns max(base - (level-1) * step, floor).
func (d *DifficultyController) SpawnPeriodFor(level int) time.Duration {
	steps := time.Duration(max(level-1, 0))
	return max(d.cfg.BaseSpawn-steps*d.cfg.SpawnStep, d.cfg.SpawnFloor)
}

// SaturationLevel returns the first level at which both speed and spawn
// period have reached their limits.
func (d *DifficultyController) SaturationLevel() int {
	level := 1
	for level < 1000 {
		if d.MaxSpeedFor(level) >= d.cfg.SpeedCap && d.SpawnPeriodFor(level) <= d.cfg.SpawnFloor {
			return level
		}
		level++
	}
	return level
}

// Interval returns the session time per level.
func (d *DifficultyController) Interval() time.Duration {
	return d.cfg.Interval
}

func (d *DifficultyController) startLevel() int {
	return max(d.cfg.StartLevel, 1)
}

func (d *DifficultyController) apply(level int) {
	d.level = level
	d.maxSpeed = d.MaxSpeedFor(level)
	d.spawnPeriod = d.SpawnPeriodFor(level)
}
