package engine

import (
	"math/rand"
	"time"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

// DodgerConfig describes a falling-obstacle dodger.
type DodgerConfig struct {
	GameKey       string
	Playfield     core.Size
	PlayerSize    core.Size
	BottomMargin  float64 // Gap between player and bottom edge
	PlayerSpeed   float64
	ObstacleSize  core.Size
	BaseSpeed     float64 // Obstacle fall speed per step
	SpawnInterval time.Duration
	SpeedCurve    func(elapsed time.Duration) float64
	ScoreCurve    func(elapsed time.Duration) int
}

// Dodger builds an engine config for the dodger variant.
// The player starts centred at the bottom; obstacles enter above the top
// edge at a random x and fall straight down. Touching any obstacle loses.
// The dodger has no win condition.
func Dodger(dc DodgerConfig) Config {
	return Config{
		GameKey:         dc.GameKey,
		Playfield:       dc.Playfield,
		SpawnInterval:   dc.SpawnInterval,
		BaseSpeed:       dc.BaseSpeed,
		PlayerSpeed:     dc.PlayerSpeed,
		DifficultyCurve: dc.SpeedCurve,
		ScoreIncrement:  dc.ScoreCurve,
		Setup: func(l *Loop) {
			l.AddEntity(Entity{
				Kind: KindPlayer,
				Pos: core.Vec{
					X: (dc.Playfield.W - dc.PlayerSize.W) / 2,
					Y: dc.Playfield.H - dc.PlayerSize.H - dc.BottomMargin,
				},
				Size: dc.PlayerSize,
			})
		},
		Spawn: func(w *World, rng *rand.Rand) (Entity, bool) {
			span := max(w.Playfield.W-dc.ObstacleSize.W, 0)
			return Entity{
				Kind: KindObstacle,
				Pos:  core.Vec{X: rng.Float64() * span, Y: -dc.ObstacleSize.H},
				Size: dc.ObstacleSize,
				Vel:  core.Vec{Y: dc.BaseSpeed},
			}, true
		},
		LoseCondition: Collided,
	}
}

// Collided reports whether the player overlaps any obstacle.
func Collided(w *World) bool {
	p := w.Player()
	if p == nil {
		return false
	}
	pb := p.Box()
	for _, e := range w.Entities {
		if e.Kind == KindObstacle && pb.Intersects(e.Box()) {
			return true
		}
	}
	return false
}
