package config

import (
	_ "embed"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the default meteors configuration.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		World: WorldConfig{
			PlanetRadius:  120,
			OortRadius:    600,
			ViewRadius:    400,
			RotationSpeed: 0.015,
		},
		Player: PlayerConfig{
			Width:        16,
			Height:       24,
			MaxStarPower: 5,
			MaxBombs:     3,
			StartBombs:   1,
			BlinkMS:      1000,
			StarPoints:   100,
			LevelBonus:   500,
		},
		Meteors: SpawnConfig{
			Cap:                250,
			IntervalMS:         400,
			MinIntervalMS:      100,
			RandomEnabled:      true,
			FallSpeed:          2.0,
			Size:               20,
			ScriptSpeed:        2.0,
			CurvePercent:       10,
			OscillatePercent:   5,
			CurveMax:           0.004,
			OscillateAmplitude: 0.3,
			OscillatePeriodMS:  2000,
		},
		Stars: SpawnConfig{
			Cap:           1,
			IntervalMS:    5000,
			MinIntervalMS: 5000,
			RandomEnabled: true,
			FallSpeed:     3.0,
			Size:          24,
			ScriptSpeed:   3.0,
		},
		Powerups: SpawnConfig{
			Cap:           1,
			IntervalMS:    15000,
			MinIntervalMS: 15000,
			RandomEnabled: true,
			FallSpeed:     4.0,
			Size:          20,
			ScriptSpeed:   4.0,
		},
		Debris: DebrisConfig{
			Alpha:     0.6,
			Scale:     0.35,
			AlphaStep: 0.0075,
			ScaleStep: 0.0015,
		},
		Modes: ModesConfig{
			TitleDelayMS: 500,
			BannerMS:     2000,
		},
		Driver: DriverConfig{
			Enabled: true,
			MinMS:   8000,
			MaxMS:   16000,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			IntervalStepMS: 25,
			IntervalScale:  1.0,
		},
	}
}
