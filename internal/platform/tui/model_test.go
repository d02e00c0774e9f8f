package tui

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/storage"
)

// scriptedGame reports game over whenever over is set.
type scriptedGame struct {
	steps   int
	resets  int
	resized [2]int
	over    bool
	score   int
	last    core.InputFrame
	rt      core.RuntimeConfig
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(rt core.RuntimeConfig) {
	g.resets++
	g.rt = rt
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The host clears its frame after Step returns
	g.last = core.InputFrame{Actions: maps.Clone(in.Actions), Clicks: slices.Clone(in.Clicks)}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "SCRIPTED")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

type resizableGame struct {
	scriptedGame
}

func (g *resizableGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m GameModel) GameModel {
	next, _ := m.Update(TickMsg{Session: m.sessionID})
	return next.(GameModel)
}

func TestGameModelPassesStore(t *testing.T) {
	store := openStore(t)

	g := &scriptedGame{}
	m := NewGameModel(g, store, core.DefaultConfig(), nil)
	m.Init()
	if g.rt.Scores == nil {
		t.Error("RuntimeConfig.Scores should be the store")
	}
	if g.rt.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}

	g2 := &scriptedGame{}
	NewGameModel(g2, nil, core.DefaultConfig(), nil).Init()
	if g2.rt.Scores != nil {
		t.Error("a nil store should leave Scores unset")
	}
}

func TestGameModelRecordsScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{}
	m := NewGameModel(g, store, core.DefaultConfig(), nil)
	m.Init()

	m = tick(m)
	g.over, g.score = true, 40
	m = tick(m)
	m = tick(m)

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Fatalf("scores = %+v, expected a single 40", scores)
	}

	// Restart inside the game re-arms recording
	g.over, g.score = false, 0
	m = tick(m)
	g.over, g.score = true, 15
	tick(m)

	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("scores = %+v, expected two sessions", scores)
	}
}

func TestGameModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{over: true}
	m := NewGameModel(g, store, core.DefaultConfig(), nil)
	tick(m)

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("scores = %+v, expected none for a zero score", scores)
	}
}

func TestGameModelForwardsInput(t *testing.T) {
	g := &scriptedGame{}
	m := NewGameModel(g, nil, core.DefaultConfig(), nil)

	next, _ := m.Update(runeKey("d"))
	next, _ = next.(GameModel).Update(runeKey("d"))
	next, _ = next.(GameModel).Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(next.(GameModel))

	if got := g.last.Count(core.ActionRight); got != 2 {
		t.Errorf("Count(Right) = %d, expected 2", got)
	}
	if len(g.last.Clicks) != 1 {
		t.Errorf("Clicks = %+v, expected one", g.last.Clicks)
	}

	// The frame is cleared after every tick
	tick(m)
	if g.last.Has(core.ActionRight) || len(g.last.Clicks) != 0 {
		t.Error("input should not carry over to the next tick")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{}
	m := NewGameModel(g, nil, core.DefaultConfig(), nil)

	m.Update(TickMsg{Session: "some-earlier-game"})
	if g.steps != 0 {
		t.Errorf("steps = %d, expected a stale tick to be ignored", g.steps)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, nil, core.DefaultConfig(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("Esc should request the menu")
	}
	if cmd != nil {
		t.Error("an embedded game should hand Back to its parent without quitting")
	}

	next, cmd = m.Update(runeKey("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelResize(t *testing.T) {
	g := &resizableGame{}
	m := NewGameModel(g, nil, core.DefaultConfig(), nil)
	m.Init()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize() got %v, expected [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, a resizable game should keep its session", g.resets)
	}

	plain := &scriptedGame{}
	pm := NewGameModel(plain, nil, core.DefaultConfig(), nil)
	pm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if plain.resets != 1 || plain.rt.ScreenW != 100 {
		t.Errorf("plain game should be reset at the new size, resets=%d width=%d", plain.resets, plain.rt.ScreenW)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "NEON", core.ColorBrightMagenta)
	s.DrawTextColored(8, 1, "GRID", core.ColorCyan)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("rendered %d line breaks, expected 2", lines)
	}
	if !strings.Contains(out, "NEON") || !strings.Contains(out, "GRID") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"abcd", 2, "abcd"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
