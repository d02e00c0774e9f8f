// Package neoncipher implements Neon Cipher, a memory-sequence game.
// A growing sequence of tiles flashes on a grid; the player repeats it
// with the cursor or the mouse to advance a level.
package neoncipher

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/cyberarcade/neon-arcade/internal/config"
	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/engine"
	"github.com/cyberarcade/neon-arcade/internal/registry"
)

// ID is the registry and score key of the game.
const ID = "neoncipher"

// Result messages shown when a round ends.
const (
	MsgMismatch = "System Breach: Sequence Mismatch!"
	MsgComplete = "System Integrity Maintained: Full Sequence Decrypted!"
)

// Game adapts the sequence engine to the arcade platform.
type Game struct {
	cfg    config.NeonCipherConfig
	rt     core.RuntimeConfig
	seq    *engine.Sequence
	loop   *engine.Loop
	cursor int
	ticks  int64 // Unpaused running ticks, monotonic across restarts
	paused bool
	err    error
}

var configPath string
var difficultyPreset config.DifficultyPreset
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to each new session.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a new Neon Cipher instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Cipher"
}

// Reset loads configuration and puts the game on its start screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt

	cfg, err := config.LoadNeonCipher(configPath)
	if err != nil && logger != nil {
		logger.Warn("using default config", "game", ID, "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyNeonCipherPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.seq = engine.NewSequence(engine.SequenceConfig{
		GameKey:       ID,
		GridSize:      cfg.Grid.Size,
		TileSize:      cfg.Grid.TileSize,
		TileSpacing:   cfg.Grid.TileSpacing,
		FlashDuration: cfg.Timing.FlashDuration,
		LevelUpDelay:  cfg.Timing.LevelUpDelay,
		MaxLength:     cfg.Sequence.MaxLength,
		LevelPoints:   cfg.Sequence.LevelPoints,
	})

	opts := []engine.Option{engine.WithSeed(rt.Seed), engine.WithStore(rt.Scores)}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	g.loop = engine.New(opts...)
	g.cursor = 0
	g.ticks = 0
	g.paused = false
	g.err = nil
}

// Resize records the new screen size so clicks map onto the new layout.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	start := in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || len(in.Clicks) > 0

	switch g.loop.Status() {
	case engine.StatusReady:
		if start {
			g.err = g.loop.Start(g.seq.Config())
			if g.err != nil && logger != nil {
				logger.Error("cannot start session", "game", ID, "error", g.err)
			}
		}
		return core.StepResult{State: g.State()}

	case engine.StatusOver:
		if start {
			g.loop.HandleInput(engine.Restart())
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.loop.HandleInput(engine.Select(g.cursor))
	}
	for _, c := range in.Clicks {
		if tile, ok := g.tileAt(c.X, c.Y); ok {
			g.cursor = tile
			g.loop.HandleInput(engine.Select(tile))
		}
	}

	g.ticks++
	g.loop.Tick(g.now())

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.seq.GridSize()
	if n < 1 {
		return
	}
	row, col := g.cursor/n, g.cursor%n
	col += in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	row += in.Count(core.ActionDown) - in.Count(core.ActionUp)
	g.cursor = core.Clamp(row, 0, n-1)*n + core.Clamp(col, 0, n-1)
}

// tileAt maps a screen cell to the tile under it.
func (g *Game) tileAt(x, y int) (int, bool) {
	vp := layout(g.seq.Extent(), g.rt.ScreenW, g.rt.ScreenH)
	p, ok := vp.Unproject(x, y)
	if !ok {
		return 0, false
	}
	return g.seq.HitTest(p)
}

func (g *Game) now() time.Duration {
	return time.Duration(g.ticks) * g.rt.TickInterval()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.loop == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.loop.Score(),
		GameOver: g.loop.Status() == engine.StatusOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
