package core

import "math"

// Viewport maps playfield units onto a rectangle of screen cells.
type Viewport struct {
	Field  Size // Playfield dimensions
	Screen Rect // Target area on screen
}

// NewViewport fits the playfield into the given screen area.
func NewViewport(field Size, screen Rect) Viewport {
	return Viewport{Field: field, Screen: screen}
}

func (v Viewport) valid() bool {
	return v.Field.W > 0 && v.Field.H > 0 && v.Screen.W > 0 && v.Screen.H > 0
}

// Point converts a playfield point into a screen cell.
func (v Viewport) Point(p Vec) (int, int) {
	if !v.valid() {
		return v.Screen.X, v.Screen.Y
	}
	x := math.Floor(p.X * float64(v.Screen.W) / v.Field.W)
	y := math.Floor(p.Y * float64(v.Screen.H) / v.Field.H)
	return v.Screen.X + int(x), v.Screen.Y + int(y)
}

// Rect converts a playfield box into screen cells.
// Any box with positive size covers at least one cell.
func (v Viewport) Rect(b Box) Rect {
	x0, y0 := v.Point(Vec{X: b.X, Y: b.Y})
	x1, y1 := v.Point(Vec{X: b.Right(), Y: b.Bottom()})
	w, h := x1-x0, y1-y0
	if b.W > 0 && w < 1 {
		w = 1
	}
	if b.H > 0 && h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}

// Unproject converts the center of a screen cell back into playfield units.
// ok is false when the cell lies outside the viewport.
func (v Viewport) Unproject(x, y int) (Vec, bool) {
	if !v.valid() || !v.Screen.Contains(x, y) {
		return Vec{}, false
	}
	return Vec{
		X: (float64(x-v.Screen.X) + 0.5) * v.Field.W / float64(v.Screen.W),
		Y: (float64(y-v.Screen.Y) + 0.5) * v.Field.H / float64(v.Screen.H),
	}, true
}
