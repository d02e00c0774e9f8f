package engine

import (
	"slices"
	"time"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

// Status is the session state of a World.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Kind discriminates entities.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindTile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindTile:
		return "tile"
	default:
		return "unknown"
	}
}

// Visual is the presentation tag of an entity.
type Visual int

const (
	VisualIdle     Visual = iota
	VisualActive          // Highlighted during sequence playback
	VisualFeedback        // Acknowledging a player selection
)

// Entity is a positioned, optionally moving object in the World.
type Entity struct {
	ID     int
	Kind   Kind
	Pos    core.Vec
	Size   core.Size
	Vel    core.Vec // Units per step before difficulty scaling
	Visual Visual
	Tile   int // Tile id, only meaningful for KindTile
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

// World is the mutable state of one play session.
// It is owned by a single Loop.
type World struct {
	Entities  []Entity
	Score     int
	Status    Status
	Elapsed   time.Duration
	Playfield core.Size

	nextID int
}

// Player returns the first player entity, or nil.
func (w *World) Player() *Entity {
	for i := range w.Entities {
		if w.Entities[i].Kind == KindPlayer {
			return &w.Entities[i]
		}
	}
	return nil
}

// Tile returns the tile entity with the given id, or nil.
func (w *World) Tile(id int) *Entity {
	for i := range w.Entities {
		if w.Entities[i].Kind == KindTile && w.Entities[i].Tile == id {
			return &w.Entities[i]
		}
	}
	return nil
}

// Count returns the number of entities of the given kind.
func (w World) Count(k Kind) int {
	n := 0
	for _, e := range w.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// add appends an entity and assigns it a session-unique id.
func (w *World) add(e Entity) int {
	w.nextID++
	e.ID = w.nextID
	w.Entities = append(w.Entities, e)
	return e.ID
}

// addScore adds points, keeping the score non-negative.
func (w *World) addScore(n int) {
	w.Score += n
	if w.Score < 0 {
		w.Score = 0
	}
}

func (w *World) clear() {
	w.Entities = w.Entities[:0]
	w.Score = 0
	w.Status = StatusReady
	w.Elapsed = 0
	w.nextID = 0
}

// clone returns a deep copy safe to hand to readers.
func (w *World) clone() World {
	c := *w
	c.Entities = slices.Clone(w.Entities)
	return c
}
