package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

// Config parameterises one game variant.
// Only SpawnInterval, BaseSpeed and Playfield are required; the rule hooks
// default to no-ops.
type Config struct {
	GameKey       string        // Persistence key for the high score slot
	Playfield     core.Size     // Logical playfield size
	SpawnInterval time.Duration // Minimum time between spawns, strictly exceeded
	BaseSpeed     float64       // Units per step for spawned entities
	PlayerSpeed   float64       // Units moved per directional intent

	// DifficultyCurve maps elapsed session time to a velocity multiplier.
	DifficultyCurve func(elapsed time.Duration) float64
	// ScoreIncrement maps elapsed session time to points per removed entity.
	ScoreIncrement func(elapsed time.Duration) int

	// Validate reports variant parameter errors; Start wraps them in
	// ErrInvalidConfig.
	Validate func() error
	// Setup populates the world when a session starts running.
	Setup func(l *Loop)
	// OnReset clears variant state when the loop returns to Ready.
	OnReset func()
	// Spawn produces a new entity when the spawn interval has passed.
	Spawn func(w *World, rng *rand.Rand) (Entity, bool)
	// OnSelect receives tile selection intents during step (b).
	OnSelect func(l *Loop, tile int)

	LoseCondition func(w *World) bool
	WinCondition  func(w *World) bool

	// OnFrame is the rendering hook, called once per completed step.
	OnFrame func(w *World)
}

func (c Config) validate() error {
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn interval %v must be positive", ErrInvalidConfig, c.SpawnInterval)
	}
	if !(c.BaseSpeed > 0) || math.IsInf(c.BaseSpeed, 0) {
		return fmt.Errorf("%w: base speed %v must be positive", ErrInvalidConfig, c.BaseSpeed)
	}
	if !(c.Playfield.W > 0) || !(c.Playfield.H > 0) {
		return fmt.Errorf("%w: playfield %vx%v must be positive", ErrInvalidConfig, c.Playfield.W, c.Playfield.H)
	}
	if c.PlayerSpeed < 0 || math.IsNaN(c.PlayerSpeed) {
		return fmt.Errorf("%w: player speed %v must not be negative", ErrInvalidConfig, c.PlayerSpeed)
	}
	if c.Validate != nil {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// speedAt returns the sanitised difficulty multiplier.
func (c Config) speedAt(elapsed time.Duration) float64 {
	if c.DifficultyCurve == nil {
		return 1
	}
	m := c.DifficultyCurve(elapsed)
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		return 1
	}
	return m
}

// scoreAt returns the points for one removal, never negative.
func (c Config) scoreAt(elapsed time.Duration) int {
	if c.ScoreIncrement == nil {
		return 1
	}
	return core.Max(c.ScoreIncrement(elapsed), 0)
}

func isBad(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Outcome tags how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLoss
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	default:
		return "none"
	}
}

// GameOver is the terminal result of a session.
type GameOver struct {
	Outcome       Outcome
	Score         int
	HighScore     int  // Best score after this session
	NewHighScore  bool // Score beat the previous best
	MismatchIndex int  // First wrong position in the sequence variant, -1 otherwise
	Persisted     bool // The store holds the current best
}

// StepResult reports the loop state after a step.
// Over is set once the session has ended.
type StepResult struct {
	Status Status
	Score  int
	Over   *GameOver
}
