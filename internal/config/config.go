// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"
	"time"
)

// VoidRunnerConfig contains all configuration for the Void Runner dodger.
type VoidRunnerConfig struct {
	Playfield  Playfield            `yaml:"playfield"`
	Player     VoidRunnerPlayer     `yaml:"player"`
	Obstacles  VoidRunnerObstacles  `yaml:"obstacles"`
	Difficulty VoidRunnerDifficulty `yaml:"difficulty"`
	Stars      int                  `yaml:"stars"`
}

// Playfield is the logical drawing surface size in pixels.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// VoidRunnerPlayer defines the player ship.
type VoidRunnerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship and bottom edge
	Speed        float64 `yaml:"speed"`         // Pixels moved per steering intent
}

// VoidRunnerObstacles defines falling obstacle parameters.
type VoidRunnerObstacles struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	BaseSpeed     float64       `yaml:"base_speed"`     // Pixels per step before scaling
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Minimum time between spawns
}

// VoidRunnerDifficulty groups the two difficulty staircases.
type VoidRunnerDifficulty struct {
	Speed Staircase `yaml:"speed"` // Multiplier applied to obstacle velocity
	Score Staircase `yaml:"score"` // Points awarded per dodged obstacle
}

// NeonCipherConfig contains all configuration for the Neon Cipher memory game.
type NeonCipherConfig struct {
	Grid     NeonCipherGrid     `yaml:"grid"`
	Timing   NeonCipherTiming   `yaml:"timing"`
	Sequence NeonCipherSequence `yaml:"sequence"`
}

// NeonCipherGrid defines the tile layout.
type NeonCipherGrid struct {
	Size        int     `yaml:"size"`         // Tiles per row and column
	TileSize    float64 `yaml:"tile_size"`    // Tile edge in pixels
	TileSpacing float64 `yaml:"tile_spacing"` // Gap between tiles in pixels
}

// NeonCipherTiming defines presentation timing.
type NeonCipherTiming struct {
	FlashDuration time.Duration `yaml:"flash_duration"`
	LevelUpDelay  time.Duration `yaml:"level_up_delay"`
}

// NeonCipherSequence defines sequence growth.
type NeonCipherSequence struct {
	MaxLength   int `yaml:"max_length"`   // Matching a sequence this long wins
	LevelPoints int `yaml:"level_points"` // Points per level, multiplied by level
}

// Validate reports values that cannot produce a playable grid.
func (c NeonCipherConfig) Validate() error {
	switch {
	case c.Grid.Size < 1:
		return fmt.Errorf("invalid neoncipher config: grid size %d must be at least 1", c.Grid.Size)
	case !(c.Grid.TileSize > 0):
		return fmt.Errorf("invalid neoncipher config: tile size %v must be positive", c.Grid.TileSize)
	case c.Grid.TileSpacing < 0:
		return fmt.Errorf("invalid neoncipher config: tile spacing %v must not be negative", c.Grid.TileSpacing)
	case c.Timing.FlashDuration <= 0:
		return fmt.Errorf("invalid neoncipher config: flash duration %v must be positive", c.Timing.FlashDuration)
	case c.Timing.LevelUpDelay < 0:
		return fmt.Errorf("invalid neoncipher config: level-up delay %v must not be negative", c.Timing.LevelUpDelay)
	case c.Sequence.MaxLength < 1:
		return fmt.Errorf("invalid neoncipher config: max length %d must be at least 1", c.Sequence.MaxLength)
	}
	return nil
}

// Cells returns the number of tiles in the grid.
func (g NeonCipherGrid) Cells() int {
	return g.Size * g.Size
}

// Extent returns the width and height of the grid including outer spacing.
func (g NeonCipherGrid) Extent() float64 {
	return float64(g.Size)*g.TileSize + float64(g.Size+1)*g.TileSpacing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset.
// Unknown values yield an empty preset, meaning "use config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
