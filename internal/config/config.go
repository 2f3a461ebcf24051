// Package config provides YAML-based game configuration loading and
// difficulty management for the meteors game.
package config

import (
	"fmt"
	"time"
)

// MeteorsConfig contains all configuration for the meteors game.
type MeteorsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Meteors    SpawnConfig      `yaml:"meteors"`
	Stars      SpawnConfig      `yaml:"stars"`
	Powerups   SpawnConfig      `yaml:"powerups"`
	Debris     DebrisConfig     `yaml:"debris"`
	Modes      ModesConfig      `yaml:"modes"`
	Driver     DriverConfig     `yaml:"driver"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the planet and the visible area, in world units.
type WorldConfig struct {
	PlanetRadius  float64 `yaml:"planet_radius"`
	OortRadius    float64 `yaml:"oort_radius"`    // spawn ring radius
	ViewRadius    float64 `yaml:"view_radius"`    // half-size of the on-screen square
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per rotate action
}

// PlayerConfig defines the player character and its counters.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxStarPower int     `yaml:"max_star_power"`
	MaxBombs     int     `yaml:"max_bombs"`
	StartBombs   int     `yaml:"start_bombs"`
	BlinkMS      int     `yaml:"blink_ms"`
	StarPoints   int     `yaml:"star_points"`
	LevelBonus   int     `yaml:"level_bonus"` // multiplied by the completed level
}

// SpawnConfig defines random spawning and object parameters for one kind.
type SpawnConfig struct {
	Cap           int     `yaml:"cap"`
	IntervalMS    int     `yaml:"interval_ms"`
	MinIntervalMS int     `yaml:"min_interval_ms"`
	RandomEnabled bool    `yaml:"random_enabled"`
	FallSpeed     float64 `yaml:"fall_speed"`   // units per tick
	Size          float64 `yaml:"size"`         // sprite width and height
	ScriptSpeed   float64 `yaml:"script_speed"` // speed of scripted spawns without one

	// Variant weights, in percent of random spawns. Only meteors use them.
	CurvePercent     float64 `yaml:"curve_percent"`
	OscillatePercent float64 `yaml:"oscillate_percent"`

	CurveMax           float64 `yaml:"curve_max"`           // max radians per tick
	OscillateAmplitude float64 `yaml:"oscillate_amplitude"` // radians
	OscillatePeriodMS  int     `yaml:"oscillate_period_ms"`
}

// DebrisConfig defines the fade-out of impacted objects.
type DebrisConfig struct {
	Alpha     float64 `yaml:"alpha"`
	Scale     float64 `yaml:"scale"`
	AlphaStep float64 `yaml:"alpha_step"`
	ScaleStep float64 `yaml:"scale_step"`
}

// ModesConfig defines the title screen and level banner timings.
type ModesConfig struct {
	TitleDelayMS int `yaml:"title_delay_ms"`
	BannerMS     int `yaml:"banner_ms"`
}

// DriverConfig defines the countdown that alternates random and scripted play.
type DriverConfig struct {
	Enabled bool `yaml:"enabled"`
	MinMS   int  `yaml:"min_ms"`
	MaxMS   int  `yaml:"max_ms"`
}

// DifficultyConfig defines how the baseline meteor interval shrinks per level.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	IntervalStepMS int     `yaml:"interval_step_ms"`
	IntervalScale  float64 `yaml:"interval_scale"` // applied to meteors.interval_ms
}

// Ms converts a millisecond config value to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports the first inconsistent value in the configuration.
func (c MeteorsConfig) Validate() error {
	w := c.World
	if w.PlanetRadius <= 0 || w.OortRadius <= w.PlanetRadius {
		return fmt.Errorf("config: oort_radius (%g) must exceed planet_radius (%g) > 0", w.OortRadius, w.PlanetRadius)
	}
	if w.ViewRadius <= 0 {
		return fmt.Errorf("config: view_radius must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive")
	}
	if c.Player.MaxStarPower < 1 {
		return fmt.Errorf("config: max_star_power must be at least 1")
	}
	for name, s := range map[string]SpawnConfig{"meteors": c.Meteors, "stars": c.Stars, "powerups": c.Powerups} {
		if err := s.validate(); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	if c.Debris.AlphaStep <= 0 {
		return fmt.Errorf("config: debris alpha_step must be positive")
	}
	if c.Driver.Enabled && (c.Driver.MinMS <= 0 || c.Driver.MaxMS < c.Driver.MinMS) {
		return fmt.Errorf("config: driver range [%d, %d] is invalid", c.Driver.MinMS, c.Driver.MaxMS)
	}
	return nil
}

func (s SpawnConfig) validate() error {
	if s.Cap < 0 {
		return fmt.Errorf("cap must not be negative")
	}
	if s.IntervalMS <= 0 || s.MinIntervalMS <= 0 || s.MinIntervalMS > s.IntervalMS {
		return fmt.Errorf("interval_ms (%d) and min_interval_ms (%d) are inconsistent", s.IntervalMS, s.MinIntervalMS)
	}
	if s.FallSpeed <= 0 || s.ScriptSpeed <= 0 || s.Size <= 0 {
		return fmt.Errorf("fall_speed, script_speed and size must be positive")
	}
	if s.CurvePercent < 0 || s.OscillatePercent < 0 || s.CurvePercent+s.OscillatePercent > 100 {
		return fmt.Errorf("variant percentages must be within [0, 100]")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means the config default.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *MeteorsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.IntervalScale = 1.5
		cfg.Player.MaxStarPower = 4
		cfg.Player.StartBombs = cfg.Player.MaxBombs
	case DifficultyNormal:
		cfg.Difficulty.IntervalScale = 1.0
	case DifficultyHard:
		cfg.Difficulty.IntervalScale = 0.7
		cfg.Player.MaxStarPower = 7
		cfg.Player.StartBombs = 0
	}
}
