package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the baseline meteor spawn interval for a level.
type DifficultyManager struct {
	cfg     DifficultyConfig
	baseMS  int
	floorMS int
}

// NewDifficultyManager creates a new difficulty manager for the meteor spawner.
func NewDifficultyManager(cfg DifficultyConfig, meteors SpawnConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		baseMS:  meteors.IntervalMS,
		floorMS: meteors.MinIntervalMS,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.IntervalStepMS > 0
}

// Interval returns the baseline meteor interval for a 1-based level.
// Each level after the first shortens it by the configured step, never
// going below the configured minimum.
func (d *DifficultyManager) Interval(level int) time.Duration {
	scale := d.cfg.IntervalScale
	if scale <= 0 {
		scale = 1
	}
	ms := int(math.Round(float64(d.baseMS) * scale))

	if d.IsEnabled() && level > 1 {
		ms -= (level - 1) * d.cfg.IntervalStepMS
	}
	if ms < d.floorMS {
		ms = d.floorMS
	}
	if ms < 1 {
		ms = 1
	}
	return Ms(ms)
}
