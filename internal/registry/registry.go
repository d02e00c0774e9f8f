// Package registry holds the factories of the installed games.
// Each game package registers itself from init, so the CLI, the menu and
// the SSH server only need a blank import to offer it.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

// Game is what the platform drives once per tick.
// Implementations keep rules and presentation state only; timing, input
// devices and terminal output belong to the platform.
type Game interface {
	// ID is the stable key used on the command line and for score storage.
	ID() string

	// Title is the display name, e.g. "Void Runner".
	Title() string

	// Reset discards the session and shows the start screen.
	// The RuntimeConfig carries screen size, seed and the high-score store.
	// Restarting after game over is handled inside Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick with the input collected
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, game over and pause for the platform.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without discarding the running session.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register installs a game factory under id.
// Registering the same id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
