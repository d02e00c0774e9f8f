package neoncipher

import (
	"fmt"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/engine"
)

// Visual characters for rendering
const (
	TileIdle   = '░'
	TileLit    = '█'
	TileCursor = '▒'
)

// hudRows is the space reserved below the grid for level and score.
const hudRows = 4

// layout fits the square grid into a w x h screen above the HUD.
// Terminal cells are about twice as tall as wide, so the grid is twice as
// many columns as rows.
func layout(extent float64, w, h int) core.Viewport {
	rows := max(h-hudRows-1, 1)
	cols := max(min(rows*2, w-2), 2)
	rows = cols / 2
	x := (w - cols) / 2
	return core.NewViewport(core.Size{W: extent, H: extent}, core.NewRect(x, 1, cols, rows))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.loop == nil {
		return
	}

	w := g.loop.World()
	vp := layout(g.seq.Extent(), dst.Width(), dst.Height())
	running := w.Status == engine.StatusRunning

	for _, e := range w.Entities {
		if e.Kind != engine.KindTile {
			continue
		}
		r := vp.Rect(e.Box())
		border := core.ColorCyan
		if running && e.Tile == g.cursor {
			border = core.ColorYellow
		}

		switch {
		case e.Visual == engine.VisualActive:
			dst.DrawRect(r, TileLit, core.ColorBrightMagenta)
		case e.Visual == engine.VisualFeedback:
			dst.DrawRect(r, TileLit, core.ColorBrightCyan)
		case running && e.Tile == g.cursor:
			dst.DrawRect(r, TileCursor, core.ColorDim)
		default:
			dst.DrawRect(r, TileIdle, core.ColorDim)
		}
		dst.DrawBox(r, border)
	}

	hud := vp.Screen.Bottom() + 1
	best := max(g.loop.HighScore(), w.Score)
	dst.DrawTextCentered(hud, fmt.Sprintf("Level: %d", g.seq.Level()), core.ColorBrightCyan)
	dst.DrawTextCentered(hud+1, fmt.Sprintf("Score: %d   High Score: %d", w.Score, best), core.ColorWhite)
	if running {
		dst.DrawTextCentered(hud+2, g.prompt(), core.ColorGray)
	}

	switch {
	case w.Status == engine.StatusReady:
		lines := []core.Line{
			{Text: "NEON CIPHER", Color: core.ColorBrightCyan},
			{Text: "Memorize the sequence.", Color: core.ColorWhite},
			{Text: "Reproduce it to advance.", Color: core.ColorWhite},
			{Text: "Press Enter or Click to Start", Color: core.ColorYellow},
		}
		if g.err != nil {
			lines = append(lines, core.Line{Text: g.err.Error(), Color: core.ColorRed})
		}
		dst.DrawPanel(core.ColorCyan, lines...)

	case w.Status == engine.StatusOver:
		over := g.loop.Result()
		title := core.Line{Text: MsgMismatch, Color: core.ColorBrightMagenta}
		border := core.ColorMagenta
		if over != nil && over.Outcome == engine.OutcomeWin {
			title = core.Line{Text: MsgComplete, Color: core.ColorBrightCyan}
			border = core.ColorCyan
		}
		lines := []core.Line{title, {Text: fmt.Sprintf("Final Score: %d", w.Score), Color: core.ColorWhite}}
		if over != nil && over.NewHighScore {
			lines = append(lines, core.Line{Text: "NEW HIGH SCORE!", Color: core.ColorYellow})
		}
		lines = append(lines, core.Line{Text: "Press Enter or R to Restart", Color: core.ColorGray})
		dst.DrawPanel(border, lines...)

	case g.paused:
		dst.DrawPanel(core.ColorCyan,
			core.Line{Text: "PAUSED", Color: core.ColorBrightCyan},
			core.Line{Text: "Press P to resume", Color: core.ColorWhite},
		)
	}
}

// prompt describes what the player should do right now.
func (g *Game) prompt() string {
	if !g.loop.Accepting() {
		return "Decrypting sequence..."
	}
	return fmt.Sprintf("Your input: %d/%d", len(g.seq.Progress()), len(g.seq.Target()))
}
