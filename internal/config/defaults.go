package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/voidrunner.yaml
var defaultVoidRunnerYAML []byte

//go:embed defaults/neoncipher.yaml
var defaultNeonCipherYAML []byte

// DefaultVoidRunnerConfig returns the default Void Runner configuration.
func DefaultVoidRunnerConfig() VoidRunnerConfig {
	return VoidRunnerConfig{
		Playfield: Playfield{
			Width:  600,
			Height: 400,
		},
		Player: VoidRunnerPlayer{
			Width:        30,
			Height:       20,
			BottomMargin: 10,
			Speed:        5,
		},
		Obstacles: VoidRunnerObstacles{
			Width:         40,
			Height:        40,
			BaseSpeed:     2,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Difficulty: VoidRunnerDifficulty{
			Speed: Staircase{Base: 1.0, Step: 0.25, Every: 15 * time.Second},
			Score: Staircase{Base: 1, Step: 1, Every: 30 * time.Second},
		},
		Stars: 100,
	}
}

// DefaultNeonCipherConfig returns the default Neon Cipher configuration.
func DefaultNeonCipherConfig() NeonCipherConfig {
	return NeonCipherConfig{
		Grid: NeonCipherGrid{
			Size:        4,
			TileSize:    80,
			TileSpacing: 10,
		},
		Timing: NeonCipherTiming{
			FlashDuration: 500 * time.Millisecond,
			LevelUpDelay:  time.Second,
		},
		Sequence: NeonCipherSequence{
			MaxLength:   10,
			LevelPoints: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "voidrunner":
		return defaultVoidRunnerYAML
	case "neoncipher":
		return defaultNeonCipherYAML
	default:
		return nil
	}
}
