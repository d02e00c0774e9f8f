// Package engine implements the real-time loop shared by the arcade games.
//
// A Loop drives one World through discrete steps: spawn, apply intents,
// move, remove exits, then evaluate lose and win rules. Variants plug in as
// Config hooks. Presentation timers live on the Loop's virtual-time queue
// and are cancelled whenever a session ends or resets.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/sched"
)

// Loop owns a World and advances it on external ticks.
// A Loop is not safe for concurrent use; each session host owns its own.
type Loop struct {
	cfg        Config
	configured bool

	world World
	queue *sched.Queue
	epoch uint64

	clock     time.Duration // Latest host time seen
	startAt   time.Duration
	lastSpawn time.Duration

	pending   []Intent
	accepting bool
	mismatch  int
	over      *GameOver

	store      core.HighScoreStore
	best       int
	persistOK  bool
	persistErr error

	logger *log.Logger
	rng    *rand.Rand
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithStore sets the high score persistence slot.
func WithStore(s core.HighScoreStore) Option {
	return func(lp *Loop) {
		lp.store = s
	}
}

// WithSeed seeds the loop's random source.
func WithSeed(seed int64) Option {
	return func(lp *Loop) {
		lp.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a Loop in the Ready state.
func New(opts ...Option) *Loop {
	l := &Loop{
		queue:     sched.New(),
		accepting: true,
		mismatch:  -1,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return l
}

// Start validates cfg, resets the world and begins a running session.
// The high score is read from the store once per session.
func (l *Loop) Start(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	l.Reset()
	l.cfg = cfg
	l.configured = true
	l.world.Playfield = cfg.Playfield

	l.loadHighScore()

	l.startAt = l.clock
	l.lastSpawn = l.clock
	l.world.Status = StatusRunning

	if cfg.Setup != nil {
		cfg.Setup(l)
	}

	l.logger.Debug("session started", "game", cfg.GameKey, "best", l.best)
	return nil
}

// Reset returns the world to Ready, clears entities, score and timers,
// and re-arms input. Calling it repeatedly has no further effect.
func (l *Loop) Reset() {
	l.queue.CancelAll()
	l.epoch++
	l.world.clear()
	l.world.Playfield = l.cfg.Playfield
	l.pending = l.pending[:0]
	l.accepting = true
	l.mismatch = -1
	l.over = nil
	if l.cfg.OnReset != nil {
		l.cfg.OnReset()
	}
}

// Advance fires scheduled tasks due at or before now.
func (l *Loop) Advance(now time.Duration) {
	l.observe(now)
	l.queue.Advance(l.clock)
}

// Tick advances scheduled tasks and then steps the world.
func (l *Loop) Tick(now time.Duration) StepResult {
	l.Advance(now)
	return l.Step(now)
}

// Step advances the world by one frame. It is a no-op unless Running.
func (l *Loop) Step(now time.Duration) StepResult {
	l.observe(now)
	if l.world.Status != StatusRunning {
		return l.result()
	}

	w := &l.world
	w.Elapsed = l.clock - l.startAt

	// (a) spawn
	if l.clock-l.lastSpawn > l.cfg.SpawnInterval {
		l.lastSpawn = l.clock
		if l.cfg.Spawn != nil {
			if e, ok := l.cfg.Spawn(w, l.rng); ok {
				l.spawn(e)
			}
		}
	}

	// (b) intents
	l.applyIntents()

	// (c) movement
	mult := l.cfg.speedAt(w.Elapsed)
	for i := range w.Entities {
		e := &w.Entities[i]
		if e.Kind == KindPlayer {
			continue
		}
		e.Pos = sanitize(e.Pos.Add(e.Vel.Scale(mult)), e.Pos)
	}

	// (d) exits
	inc := l.cfg.scoreAt(w.Elapsed)
	kept := w.Entities[:0]
	for _, e := range w.Entities {
		if e.Kind != KindPlayer && e.Box().Outside(w.Playfield) {
			w.addScore(inc)
			continue
		}
		kept = append(kept, e)
	}
	w.Entities = kept

	// (e) lose, (f) win
	switch {
	case l.cfg.LoseCondition != nil && l.cfg.LoseCondition(w):
		l.finish(OutcomeLoss)
	case l.cfg.WinCondition != nil && l.cfg.WinCondition(w):
		l.finish(OutcomeWin)
	}

	if l.cfg.OnFrame != nil {
		l.cfg.OnFrame(w)
	}
	return l.result()
}

// HandleInput queues an intent for the next step.
// Returns false when the intent is ignored.
func (l *Loop) HandleInput(in Intent) bool {
	if in.Kind == IntentRestart {
		if l.world.Status == StatusRunning || !l.configured {
			return false
		}
		if err := l.Start(l.cfg); err != nil {
			l.logger.Warn("restart failed", "game", l.cfg.GameKey, "error", err)
			return false
		}
		return true
	}

	if l.world.Status != StatusRunning || !l.accepting {
		return false
	}
	if len(l.pending) >= maxPendingIntents {
		return false
	}
	l.pending = append(l.pending, in)
	return true
}

// Schedule runs fn after d of virtual time, unless the session moves on first.
// The returned task can be cancelled early.
func (l *Loop) Schedule(d time.Duration, fn func()) *sched.Task {
	return l.queue.After(d, l.guard(fn))
}

// guard binds fn to the current session epoch.
func (l *Loop) guard(fn func()) func() {
	epoch := l.epoch
	return func() {
		if l.epoch != epoch || l.world.Status != StatusRunning {
			return
		}
		fn()
	}
}

// SetAccepting opens or closes input, e.g. around a presentation phase.
func (l *Loop) SetAccepting(on bool) {
	l.accepting = on
	if !on {
		l.pending = l.pending[:0]
	}
}

// Accepting reports whether player input is currently applied.
func (l *Loop) Accepting() bool {
	return l.accepting && l.world.Status == StatusRunning
}

// SetVisual changes the visual state of a tile.
func (l *Loop) SetVisual(tile int, v Visual) {
	if e := l.world.Tile(tile); e != nil {
		e.Visual = v
	}
}

// AddScore adds points to the running session.
func (l *Loop) AddScore(n int) {
	if l.world.Status == StatusRunning {
		l.world.addScore(n)
	}
}

// AddEntity places an entity in the world during setup.
func (l *Loop) AddEntity(e Entity) int {
	return l.world.add(e)
}

// TagMismatch records the sequence index of a wrong selection.
func (l *Loop) TagMismatch(index int) {
	if l.mismatch < 0 {
		l.mismatch = index
	}
}

// Rand returns the loop's random source.
func (l *Loop) Rand() *rand.Rand {
	return l.rng
}

// World returns a copy of the current world.
func (l *Loop) World() World {
	return l.world.clone()
}

// Status returns the session status.
func (l *Loop) Status() Status {
	return l.world.Status
}

// Score returns the current score.
func (l *Loop) Score() int {
	return l.world.Score
}

// HighScore returns the best known score.
func (l *Loop) HighScore() int {
	return l.best
}

// Result returns the terminal result, or nil while the session is live.
func (l *Loop) Result() *GameOver {
	return l.over
}

// PersistenceErr returns the last store failure, wrapped in
// ErrPersistenceUnavailable, or nil.
func (l *Loop) PersistenceErr() error {
	return l.persistErr
}

// Pending returns the number of scheduled tasks.
func (l *Loop) Pending() int {
	return l.queue.Len()
}

func (l *Loop) observe(now time.Duration) {
	if now > l.clock {
		l.clock = now
	}
}

func (l *Loop) result() StepResult {
	return StepResult{Status: l.world.Status, Score: l.world.Score, Over: l.over}
}

func (l *Loop) spawn(e Entity) {
	pf := l.world.Playfield
	e.Pos.X = core.ClampF(e.Pos.X, 0, max(pf.W-e.Size.W, 0))
	e.Pos.Y = core.ClampF(e.Pos.Y, -e.Size.H, pf.H)
	l.world.add(e)
}

func (l *Loop) applyIntents() {
	for _, in := range l.pending {
		switch in.Kind {
		case IntentLeft:
			l.move(-l.cfg.PlayerSpeed)
		case IntentRight:
			l.move(l.cfg.PlayerSpeed)
		case IntentSelect:
			// A selection may close input; later ones in the batch are dropped
			if l.accepting && l.cfg.OnSelect != nil {
				l.cfg.OnSelect(l, in.Tile)
			}
		}
	}
	l.pending = l.pending[:0]
}

func (l *Loop) move(dx float64) {
	p := l.world.Player()
	if p == nil {
		return
	}
	limit := max(l.world.Playfield.W-p.Size.W, 0)
	p.Pos.X = core.ClampF(p.Pos.X+dx, 0, limit)
}

func (l *Loop) finish(outcome Outcome) {
	w := &l.world
	w.Status = StatusOver
	l.queue.CancelAll()
	l.epoch++
	l.accepting = false
	l.pending = l.pending[:0]

	g := &GameOver{
		Outcome:       outcome,
		Score:         w.Score,
		MismatchIndex: l.mismatch,
	}
	if w.Score > l.best {
		g.NewHighScore = true
		l.best = w.Score
		g.Persisted = l.saveHighScore(w.Score)
	} else {
		g.Persisted = l.store != nil && l.persistOK
	}
	g.HighScore = l.best
	l.over = g

	l.logger.Debug("session over",
		"game", l.cfg.GameKey,
		"outcome", outcome,
		"score", w.Score,
		"new_high", g.NewHighScore,
	)
}

func (l *Loop) loadHighScore() {
	l.persistOK = false
	l.persistErr = nil
	if l.store == nil {
		return
	}
	stored, err := l.store.LoadHighScore(l.cfg.GameKey)
	if err != nil {
		l.persistErr = fmt.Errorf("%w: load %s: %v", ErrPersistenceUnavailable, l.cfg.GameKey, err)
		l.logger.Warn("high score unavailable", "game", l.cfg.GameKey, "error", err)
		return
	}
	l.persistOK = stored >= l.best
	l.best = max(l.best, stored)
}

func (l *Loop) saveHighScore(score int) bool {
	if l.store == nil {
		return false
	}
	if err := l.store.SaveHighScore(l.cfg.GameKey, score); err != nil {
		l.persistErr = fmt.Errorf("%w: save %s: %v", ErrPersistenceUnavailable, l.cfg.GameKey, err)
		l.persistOK = false
		l.logger.Warn("high score not saved", "game", l.cfg.GameKey, "score", score, "error", err)
		return false
	}
	l.persistOK = true
	return true
}

// sanitize keeps positions representable, falling back to prev.
func sanitize(p, prev core.Vec) core.Vec {
	if isBad(p.X) || isBad(p.Y) {
		return prev
	}
	return p
}
