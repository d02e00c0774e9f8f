package voidrunner

import (
	"fmt"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/engine"
)

// Visual characters for rendering
const (
	ShipLeft     = '◢'
	ShipRight    = '◣'
	ShipBody     = '█'
	ObstacleChar = '▓'
	StarDim      = '.'
	StarBright   = '*'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.loop == nil {
		return
	}

	w := g.loop.World()
	hs := g.loop.HighScore()
	if w.Score > hs {
		hs = w.Score
	}

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf("SCORE: %d", w.Score), core.ColorCyan)
	hiText := fmt.Sprintf("HI-SCORE: %d", hs)
	dst.DrawTextColored(dst.Width()-len(hiText)-2, 0, hiText, core.ColorYellow)

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame, core.ColorMagenta)
	vp := core.NewViewport(g.engine.Playfield, core.NewRect(1, 2, frame.W-2, frame.H-2))

	for _, s := range g.stars.Stars() {
		x, y := vp.Point(s.Pos)
		if !vp.Screen.Contains(x, y) {
			continue
		}
		if s.Bright {
			dst.SetColored(x, y, StarBright, core.ColorGray)
		} else {
			dst.SetColored(x, y, StarDim, core.ColorDim)
		}
	}

	for _, e := range w.Entities {
		switch e.Kind {
		case engine.KindObstacle:
			dst.DrawRect(vp.Rect(e.Box()).Intersect(vp.Screen), ObstacleChar, core.ColorBrightMagenta)
		case engine.KindPlayer:
			drawShip(dst, vp.Rect(e.Box()).Intersect(vp.Screen))
		}
	}

	switch {
	case w.Status == engine.StatusReady:
		lines := []core.Line{
			{Text: "VOID RUNNER", Color: core.ColorBrightCyan},
			{Text: "A/D or Arrow Keys to Navigate", Color: core.ColorWhite},
			{Text: "Press Enter to Initialize", Color: core.ColorYellow},
		}
		if g.err != nil {
			lines = append(lines, core.Line{Text: g.err.Error(), Color: core.ColorRed})
		}
		dst.DrawPanel(core.ColorCyan, lines...)

	case w.Status == engine.StatusOver:
		lines := []core.Line{
			{Text: "SYSTEM OFFLINE", Color: core.ColorBrightMagenta},
			{Text: fmt.Sprintf("FINAL SCORE: %d", w.Score), Color: core.ColorCyan},
		}
		if over := g.loop.Result(); over != nil && over.NewHighScore {
			lines = append(lines, core.Line{Text: "NEW HIGH SCORE!", Color: core.ColorYellow})
		}
		lines = append(lines, core.Line{Text: "Press Enter or R to Reboot", Color: core.ColorWhite})
		dst.DrawPanel(core.ColorMagenta, lines...)

	case g.paused:
		dst.DrawPanel(core.ColorCyan,
			core.Line{Text: "PAUSED", Color: core.ColorBrightCyan},
			core.Line{Text: "Press P to resume", Color: core.ColorWhite},
		)
	}
}

// drawShip renders the player as a wedge.
func drawShip(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, ShipBody, core.ColorBrightCyan)
	if r.W >= 3 {
		y := r.Bottom() - 1
		dst.SetColored(r.X, y, ShipLeft, core.ColorBrightCyan)
		dst.SetColored(r.Right()-1, y, ShipRight, core.ColorBrightCyan)
	}
}
