package config

import (
	"math"
	"time"
)

// Staircase is a step function of elapsed session time:
//
//	value(t) = Base + Step * floor(t / Every)
//
// It is constant between thresholds and never decreases while Step >= 0.
// A zero Every or zero Step disables progression.
type Staircase struct {
	Base  float64       `yaml:"base"`
	Step  float64       `yaml:"step"`
	Every time.Duration `yaml:"every"`
	Max   float64       `yaml:"max"` // Optional cap, 0 means uncapped
}

// At returns the staircase value after the given elapsed time.
func (s Staircase) At(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	v := s.Base
	if s.Every > 0 && s.Step != 0 {
		steps := math.Floor(float64(elapsed) / float64(s.Every))
		v += s.Step * steps
	}
	if s.Max > 0 && v > s.Max {
		v = s.Max
	}
	return v
}

// IntAt returns the staircase value truncated to an integer, never below zero.
func (s Staircase) IntAt(elapsed time.Duration) int {
	v := int(s.At(elapsed))
	if v < 0 {
		return 0
	}
	return v
}

// Enabled reports whether the staircase ever changes value.
func (s Staircase) Enabled() bool {
	return s.Every > 0 && s.Step != 0
}

// presetScale returns how the preset stretches the staircases.
// A larger step makes the game speed up faster; a larger base starts faster.
func presetScale(preset DifficultyPreset) (base, step float64) {
	switch preset {
	case DifficultyEasy:
		return 0.8, 0.5
	case DifficultyHard:
		return 1.25, 2.0
	default:
		return 1.0, 1.0
	}
}

// ApplyVoidRunnerPreset modifies the config based on a difficulty preset.
func ApplyVoidRunnerPreset(cfg *VoidRunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Speed.Step = 0
		cfg.Difficulty.Score.Step = 0
		return
	}

	base, step := presetScale(preset)
	cfg.Difficulty.Speed.Base *= base
	cfg.Difficulty.Speed.Step *= step

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.SpawnInterval = cfg.Obstacles.SpawnInterval * 4 / 3
	case DifficultyHard:
		cfg.Obstacles.SpawnInterval = cfg.Obstacles.SpawnInterval * 2 / 3
	}
}

// ApplyNeonCipherPreset modifies the config based on a difficulty preset.
// Harder presets flash faster; fixed leaves the config untouched.
func ApplyNeonCipherPreset(cfg *NeonCipherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.FlashDuration = cfg.Timing.FlashDuration * 3 / 2
	case DifficultyHard:
		cfg.Timing.FlashDuration = cfg.Timing.FlashDuration / 2
		cfg.Timing.LevelUpDelay = cfg.Timing.LevelUpDelay * 3 / 4
	}
}
