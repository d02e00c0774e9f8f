package voidrunner

import (
	"math/rand"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

// Star is one background star in playfield units.
type Star struct {
	Pos    core.Vec
	Speed  float64 // Units per frame
	Bright bool
}

// StarField is the scrolling backdrop. It belongs to one renderer and is
// rebuilt each session.
type StarField struct {
	stars []Star
	field core.Size
	rng   *rand.Rand
}

// NewStarField scatters n stars over the playfield.
func NewStarField(n int, field core.Size, seed int64) *StarField {
	sf := &StarField{
		stars: make([]Star, max(n, 0)),
		field: field,
		rng:   rand.New(rand.NewSource(seed)),
	}
	for i := range sf.stars {
		sf.stars[i] = Star{
			Pos: core.Vec{
				X: sf.rng.Float64() * field.W,
				Y: sf.rng.Float64() * field.H,
			},
			Speed:  sf.rng.Float64()*0.3 + 0.1,
			Bright: sf.rng.Float64() < 0.3,
		}
	}
	return sf
}

// Advance drifts every star down, wrapping to the top at a new x.
func (sf *StarField) Advance() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Pos.Y += s.Speed
		if s.Pos.Y > sf.field.H {
			s.Pos.Y = 0
			s.Pos.X = sf.rng.Float64() * sf.field.W
		}
	}
}

// Stars returns the current stars.
func (sf *StarField) Stars() []Star {
	return sf.stars
}
