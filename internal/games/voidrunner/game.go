// Package voidrunner implements Void Runner, a falling-obstacle dodger.
// The ship steers left and right along the bottom edge while blocks rain
// down; each block that falls past the bottom scores points.
package voidrunner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/cyberarcade/neon-arcade/internal/config"
	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/engine"
	"github.com/cyberarcade/neon-arcade/internal/registry"
)

// ID is the registry and score key of the game.
const ID = "voidrunner"

// Game adapts the dodger engine to the arcade platform.
type Game struct {
	cfg    config.VoidRunnerConfig
	rt     core.RuntimeConfig
	loop   *engine.Loop
	engine engine.Config
	stars  *StarField
	ticks  int64 // Unpaused running ticks, monotonic across restarts
	paused bool
	err    error // Last start failure, shown on the ready screen
}

// configPath stores the custom config path set via CLI
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

// New creates a new Void Runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// Reset loads configuration and puts the game on its start screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt

	cfg, err := config.LoadVoidRunner(configPath)
	if err != nil && logger != nil {
		logger.Warn("using default config", "game", ID, "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyVoidRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	field := core.Size{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
	g.stars = NewStarField(cfg.Stars, field, rt.Seed)

	g.engine = engine.Dodger(engine.DodgerConfig{
		GameKey:       ID,
		Playfield:     field,
		PlayerSize:    core.Size{W: cfg.Player.Width, H: cfg.Player.Height},
		BottomMargin:  cfg.Player.BottomMargin,
		PlayerSpeed:   cfg.Player.Speed,
		ObstacleSize:  core.Size{W: cfg.Obstacles.Width, H: cfg.Obstacles.Height},
		BaseSpeed:     cfg.Obstacles.BaseSpeed,
		SpawnInterval: cfg.Obstacles.SpawnInterval,
		SpeedCurve:    cfg.Difficulty.Speed.At,
		ScoreCurve:    cfg.Difficulty.Score.IntAt,
	})
	g.engine.OnFrame = func(*engine.World) { g.stars.Advance() }

	opts := []engine.Option{engine.WithSeed(rt.Seed), engine.WithStore(rt.Scores)}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	g.loop = engine.New(opts...)
	g.ticks = 0
	g.paused = false
	g.err = nil
}

// Resize records the new screen size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.loop.Status() {
	case engine.StatusReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}

	case engine.StatusOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.stars = NewStarField(g.cfg.Stars, g.engine.Playfield, g.rt.Seed+g.ticks)
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

	for range in.Count(core.ActionLeft) {
		g.loop.HandleInput(engine.Left())
	}
	for range in.Count(core.ActionRight) {
		g.loop.HandleInput(engine.Right())
	}

	g.ticks++
	g.loop.Tick(g.now())

	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.err = g.loop.Start(g.engine)
	if g.err != nil && logger != nil {
		logger.Error("cannot start session", "game", ID, "error", g.err)
	}
}

// now is the engine clock: running ticks times the tick interval.
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
