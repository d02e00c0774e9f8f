package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/sched"
)

// SequenceConfig describes the memory-sequence variant.
type SequenceConfig struct {
	GameKey       string
	GridSize      int // Tiles per row and column
	TileSize      float64
	TileSpacing   float64
	FlashDuration time.Duration
	LevelUpDelay  time.Duration
	MaxLength     int // Fully matching a target this long wins
	LevelPoints   int // Level completion awards level * LevelPoints
}

func (c SequenceConfig) validate() error {
	var errs []error
	if c.GridSize < 1 {
		errs = append(errs, fmt.Errorf("grid size %d must be at least 1", c.GridSize))
	}
	if !(c.TileSize > 0) {
		errs = append(errs, fmt.Errorf("tile size %v must be positive", c.TileSize))
	}
	if c.TileSpacing < 0 || isBad(c.TileSpacing) {
		errs = append(errs, fmt.Errorf("tile spacing %v must not be negative", c.TileSpacing))
	}
	if c.FlashDuration <= 0 {
		errs = append(errs, fmt.Errorf("flash duration %v must be positive", c.FlashDuration))
	}
	if c.LevelUpDelay < 0 {
		errs = append(errs, fmt.Errorf("level-up delay %v must not be negative", c.LevelUpDelay))
	}
	if c.MaxLength < 1 {
		errs = append(errs, fmt.Errorf("max length %d must be at least 1", c.MaxLength))
	}
	return errors.Join(errs...)
}

// Sequence holds the challenge state of the memory variant.
// It is cleared when the loop starts or resets a session.
type Sequence struct {
	cfg SequenceConfig

	target   []int
	progress []int
	level    int
	mismatch int
	won      bool
	feedback *sched.Task // Pending end of the selection flash
}

// NewSequence creates the challenge state for cfg.
// An invalid cfg is rejected when the loop starts.
func NewSequence(cfg SequenceConfig) *Sequence {
	return &Sequence{cfg: cfg, level: 1, mismatch: -1}
}

// Config returns an engine config bound to this sequence.
// Tiles never move, so the spawn interval only satisfies validation.
func (s *Sequence) Config() Config {
	extent := s.Extent()
	return Config{
		GameKey:       s.cfg.GameKey,
		Playfield:     core.Size{W: extent, H: extent},
		SpawnInterval: max(s.cfg.FlashDuration, time.Millisecond),
		BaseSpeed:     1,
		Validate:      s.cfg.validate,
		Setup:         s.setup,
		OnReset:       s.clear,
		OnSelect:      s.selectTile,
		LoseCondition: func(*World) bool { return s.mismatch >= 0 },
		WinCondition:  func(*World) bool { return s.won },
	}
}

// GridSize returns the number of tiles per row and column.
func (s *Sequence) GridSize() int {
	return s.cfg.GridSize
}

// Cells returns the number of tiles.
func (s *Sequence) Cells() int {
	return s.cfg.GridSize * s.cfg.GridSize
}

// Extent returns the grid edge length including outer spacing.
func (s *Sequence) Extent() float64 {
	n := float64(s.cfg.GridSize)
	return n*s.cfg.TileSize + (n+1)*s.cfg.TileSpacing
}

// TileBox returns the bounding box of tile id.
func (s *Sequence) TileBox(id int) core.Box {
	row, col := id/s.cfg.GridSize, id%s.cfg.GridSize
	step := s.cfg.TileSize + s.cfg.TileSpacing
	return core.Box{
		X: s.cfg.TileSpacing + float64(col)*step,
		Y: s.cfg.TileSpacing + float64(row)*step,
		W: s.cfg.TileSize,
		H: s.cfg.TileSize,
	}
}

// HitTest returns the tile whose interior strictly contains p.
func (s *Sequence) HitTest(p core.Vec) (int, bool) {
	for id := range s.Cells() {
		if s.TileBox(id).ContainsStrict(p.X, p.Y) {
			return id, true
		}
	}
	return 0, false
}

// Target returns a copy of the target sequence.
func (s *Sequence) Target() []int { return slices.Clone(s.target) }

// Progress returns a copy of the player's matched prefix.
func (s *Sequence) Progress() []int { return slices.Clone(s.progress) }

// Level returns the current level, starting at 1.
func (s *Sequence) Level() int { return s.level }

// Mismatch returns the first wrong index, or -1.
func (s *Sequence) Mismatch() int { return s.mismatch }

// Won reports whether the full-length target was matched.
func (s *Sequence) Won() bool { return s.won }

// PlaybackDuration returns how long the current target takes to present,
// including the trailing pause.
func (s *Sequence) PlaybackDuration() time.Duration {
	return time.Duration(len(s.target)) * s.slot()
}

func (s *Sequence) slot() time.Duration {
	return s.cfg.FlashDuration + s.cfg.FlashDuration/2
}

func (s *Sequence) clear() {
	s.target = s.target[:0]
	s.progress = s.progress[:0]
	s.level = 1
	s.mismatch = -1
	s.won = false
	s.feedback = nil
}

func (s *Sequence) setup(l *Loop) {
	s.clear()
	for id := range s.Cells() {
		b := s.TileBox(id)
		l.AddEntity(Entity{
			Kind: KindTile,
			Pos:  core.Vec{X: b.X, Y: b.Y},
			Size: core.Size{W: b.W, H: b.H},
			Tile: id,
		})
	}
	s.nextLevel(l)
}

func (s *Sequence) nextLevel(l *Loop) {
	if len(s.target) < s.cfg.MaxLength {
		s.target = append(s.target, l.Rand().Intn(s.Cells()))
	}
	s.progress = s.progress[:0]
	s.playback(l)
}

// playback flashes each target tile in turn, then opens input.
func (s *Sequence) playback(l *Loop) {
	l.SetAccepting(false)
	s.endFeedback(l)
	slot := s.slot()
	for i, tile := range s.target {
		at := time.Duration(i) * slot
		l.Schedule(at, func() { l.SetVisual(tile, VisualActive) })
		l.Schedule(at+s.cfg.FlashDuration, func() { l.SetVisual(tile, VisualIdle) })
	}
	l.Schedule(s.PlaybackDuration(), func() { l.SetAccepting(true) })
}

func (s *Sequence) selectTile(l *Loop, tile int) {
	if tile < 0 || tile >= s.Cells() || s.mismatch >= 0 || s.won {
		return
	}

	s.endFeedback(l)
	l.SetVisual(tile, VisualFeedback)
	s.feedback = l.Schedule(s.cfg.FlashDuration/2, func() {
		s.feedback = nil
		l.SetVisual(tile, VisualIdle)
	})

	idx := len(s.progress)
	if idx >= len(s.target) || s.target[idx] != tile {
		s.mismatch = idx
		l.TagMismatch(idx)
		return
	}
	s.progress = append(s.progress, tile)

	if len(s.progress) < len(s.target) {
		return
	}
	if len(s.target) >= s.cfg.MaxLength {
		s.won = true
		return
	}

	l.AddScore(s.level * s.cfg.LevelPoints)
	s.level++
	l.SetAccepting(false)
	l.Schedule(s.cfg.LevelUpDelay, func() { s.nextLevel(l) })
}

// endFeedback cancels a pending selection flash and idles every tile.
func (s *Sequence) endFeedback(l *Loop) {
	if s.feedback != nil {
		s.feedback.Cancel()
		s.feedback = nil
	}
	for id := range s.Cells() {
		l.SetVisual(id, VisualIdle)
	}
}
