package core

import "time"

// HighScoreStore is the persistence slot for a game's best score.
// Implementations are simple key-value get/set; the engine is the only
// writer during a session.
type HighScoreStore interface {
	LoadHighScore(gameKey string) (int, error)
	SaveHighScore(gameKey string, score int) error
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int            // Screen width in characters
	ScreenH  int            // Screen height in characters
	TickRate int            // Simulation ticks per second (default 60)
	Seed     int64          // RNG seed for deterministic gameplay
	Scores   HighScoreStore // Best-score slot, nil for in-memory only
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock length of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
