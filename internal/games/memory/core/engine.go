// Package core implements the memory game engine: pair generation, the
// card grid, the flip/match/mismatch state machine, scoring and the
// single-slot save. It has no terminal or database dependencies; the
// caller drives time through Engine.Advance and receives side effects
// through the Renderer, Audio and ScoreDisplay collaborators.
package core

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// State is the phase of the match engine.
type State int

const (
	StateIdle       State = iota // accepting flips, 0 or 1 pending card
	StateResolving               // two pending cards being resolved
	StatePreviewing              // all cards shown before the first turn
	StateComplete                // every pair found
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StatePreviewing:
		return "previewing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ErrNegativeDelay is returned for timing values below zero.
var ErrNegativeDelay = errors.New("delays must not be negative")

// Config holds the per-session engine settings.
type Config struct {
	Rows int
	Cols int

	PreviewDuration   time.Duration
	MismatchHideDelay time.Duration
	MatchPopDelay     time.Duration

	MatchPoints     int
	MismatchPenalty int
}

// DefaultConfig returns a 4x4 board with the standard timings and scoring.
func DefaultConfig() Config {
	return Config{
		Rows:              4,
		Cols:              4,
		PreviewDuration:   2 * time.Second,
		MismatchHideDelay: time.Second,
		MatchPopDelay:     500 * time.Millisecond,
		MatchPoints:       10,
		MismatchPenalty:   2,
	}
}

// Validate rejects boards that are oversized or cannot be split into pairs,
// and negative delays.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board %dx%d: %w", c.Rows, c.Cols, ErrEmptyGrid)
	}
	if c.Rows > MaxGridSide || c.Cols > MaxGridSide {
		return fmt.Errorf("board %dx%d: %w", c.Rows, c.Cols, ErrGridTooLarge)
	}
	if (c.Rows*c.Cols)%2 != 0 {
		return fmt.Errorf("board %dx%d: %w", c.Rows, c.Cols, ErrOddCardCount)
	}
	if c.PreviewDuration < 0 || c.MismatchHideDelay < 0 || c.MatchPopDelay < 0 {
		return ErrNegativeDelay
	}
	return nil
}

// Deps are the engine collaborators. Any nil field is replaced with a
// no-op (or an in-memory store, a time-seeded source, a discard logger).
type Deps struct {
	Store        SaveStore
	Renderer     Renderer
	Audio        Audio
	ScoreDisplay ScoreDisplay
	Source       Source
	Logger       *log.Logger
}

// Engine is the match state machine. It is not safe for concurrent use;
// all calls must come from the game loop.
type Engine struct {
	cfg      Config
	store    SaveStore
	renderer Renderer
	audio    Audio
	src      Source
	logger   *log.Logger

	ledger *Ledger
	sched  *Scheduler

	grid        *Grid
	unsubscribe func()
	pending     []*Card
	state       State

	// session is bumped whenever the grid is replaced; timers from an
	// older session are skipped.
	session  uint64
	moves    int
	matches  int
	gameOver bool
}

// NewEngine creates an engine. An invalid cfg is replaced by DefaultConfig.
// Call Start before use.
func NewEngine(cfg Config, deps Deps) *Engine {
	e := &Engine{
		store:    deps.Store,
		renderer: deps.Renderer,
		audio:    deps.Audio,
		src:      deps.Source,
		logger:   deps.Logger,
		sched:    NewScheduler(),
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.store == nil {
		e.store = NewMemoryStore()
	}
	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.src == nil {
		e.src = NewSource(time.Now().UnixNano())
	}
	e.ledger = NewLedger(deps.ScoreDisplay)

	if err := cfg.Validate(); err != nil {
		e.logger.Warn("invalid engine config, using defaults", "error", err)
		cfg = DefaultConfig()
	}
	e.cfg = cfg
	return e
}

// Start resumes the saved game if there is one, otherwise starts a new
// game with the preview window.
func (e *Engine) Start() {
	if !e.store.Exists() {
		e.NewGame()
		return
	}

	snap, ok, err := e.store.Load()
	switch {
	case err != nil:
		e.logger.Warn("could not load save, starting new game", "error", err)
		e.NewGame()
	case !ok:
		e.NewGame()
	default:
		if err := snap.Validate(); err != nil {
			e.logger.Warn("discarding save", "error", err)
			e.NewGame()
			return
		}
		e.restore(snap)
	}
}

// NewGame discards any save and deals a fresh board.
func (e *Engine) NewGame() {
	e.clearSave()

	grid, err := NewGrid(e.cfg.Rows, e.cfg.Cols, e.src, e.renderer)
	if err != nil {
		// Unreachable with a validated config.
		e.logger.Error("could not build grid", "error", err)
		return
	}
	e.attach(grid)
	e.ledger.Set(0)

	if e.cfg.PreviewDuration <= 0 {
		e.state = StateIdle
		e.save()
		return
	}

	e.state = StatePreviewing
	grid.RevealAllInstant()
	e.sched.After(e.cfg.PreviewDuration, e.endPreview, e.current(e.session))
}

func (e *Engine) endPreview() {
	e.grid.HideUnmatchedInstant()
	e.state = StateIdle
	e.save()
}

// restore rebuilds the board from a snapshot and writes it back. Cards
// beyond the shorter of the saved list and the board keep their generated
// state. A fully matched save starts a new game.
func (e *Engine) restore(snap Snapshot) {
	grid, err := NewGrid(snap.GridRows, snap.GridCols, e.src, e.renderer)
	if err != nil {
		e.logger.Warn("could not rebuild saved grid, starting new game", "error", err)
		e.NewGame()
		return
	}

	n := min(len(snap.Cards), grid.Len())
	matched := 0
	for i := 0; i < n; i++ {
		if snap.Cards[i].IsMatched {
			matched++
		}
	}
	if matched == grid.Len() {
		// The finished game was already scored.
		e.logger.Warn("discarding save of a finished board")
		e.NewGame()
		return
	}

	if len(snap.Cards) != grid.Len() {
		e.logger.Warn("save card count differs from board, restoring prefix",
			"saved", len(snap.Cards), "board", grid.Len(), "restored", n)
	}
	for i := 0; i < n; i++ {
		grid.restoreCard(i, snap.Cards[i])
	}

	e.attach(grid)
	e.ledger.Set(snap.Score)
	e.matches = grid.MatchedCount() / 2

	var faceUp []*Card
	for _, c := range grid.cards {
		if c.flipped && !c.matched {
			faceUp = append(faceUp, c)
		}
	}
	switch {
	case len(faceUp) == 1:
		e.pending = append(e.pending, faceUp[0])
	case len(faceUp) > 1:
		// Saved between a mismatch and its hide.
		for _, c := range faceUp {
			c.RestoreInstant(false, false)
		}
	}

	e.state = StateIdle
	e.save()
	e.logger.Debug("resumed game", "rows", grid.Rows(), "cols", grid.Cols(), "score", snap.Score)
}

// attach replaces the grid and starts a new session.
func (e *Engine) attach(g *Grid) {
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
	e.session++
	e.grid = g
	e.unsubscribe = g.Subscribe(FlipListenerFunc(e.onCardFlipped))
	e.pending = nil
	e.moves = 0
	e.matches = 0
	e.gameOver = false
}

// current returns a predicate that holds while session is still active.
func (e *Engine) current(session uint64) func() bool {
	return func() bool { return e.session == session }
}

// Select flips the card at index on behalf of the player. It returns
// false when input is locked or the card cannot be revealed.
func (e *Engine) Select(index int) bool {
	if e.state != StateIdle || e.grid == nil {
		return false
	}
	c := e.grid.Card(index)
	if c == nil {
		return false
	}
	return c.Select()
}

func (e *Engine) onCardFlipped(c *Card) {
	if e.state != StateIdle || len(e.pending) >= 2 {
		// Flip bypassed Select while input was locked.
		e.logger.Debug("flip rejected", "index", c.Index(), "state", e.state)
		c.RestoreInstant(false, false)
		return
	}

	e.pending = append(e.pending, c)
	e.audio.Flip()
	e.save()

	if len(e.pending) == 2 {
		e.state = StateResolving
		e.resolve()
	}
}

func (e *Engine) resolve() {
	a, b := e.pending[0], e.pending[1]
	e.pending = e.pending[:0]
	e.moves++

	if a.ID() == b.ID() {
		a.MarkMatched()
		b.MarkMatched()
		e.matches++
		e.ledger.Add(e.cfg.MatchPoints)
		e.audio.Match()

		session := e.session
		e.sched.After(e.cfg.MatchPopDelay, func() {
			e.renderer.CardChanged(a.View(), TransitionPop)
			e.renderer.CardChanged(b.View(), TransitionPop)
		}, func() bool {
			return e.session == session && a.IsMatched() && b.IsMatched()
		})

		e.save()
		if e.grid.AllMatched() {
			e.complete()
			return
		}
		e.state = StateIdle
		return
	}

	e.ledger.Subtract(e.cfg.MismatchPenalty)
	e.audio.Mismatch()
	e.save()
	e.state = StateIdle

	e.sched.After(e.cfg.MismatchHideDelay, func() {
		a.Hide()
		b.Hide()
		e.save()
	}, e.current(e.session))
}

func (e *Engine) complete() {
	e.state = StateComplete
	if !e.gameOver {
		e.gameOver = true
		e.audio.GameOver()
		e.logger.Info("board cleared", "score", e.ledger.Current(), "moves", e.moves)
	}
	e.clearSave()
}

// Advance moves engine time forward and fires due timers.
func (e *Engine) Advance(dt time.Duration) {
	e.sched.Advance(dt)
}

func (e *Engine) save() {
	if e.grid == nil || e.state == StateComplete {
		return
	}
	if err := e.store.Save(TakeSnapshot(e.grid, e.ledger.Current())); err != nil {
		e.logger.Warn("save failed", "error", err)
	}
}

func (e *Engine) clearSave() {
	if err := e.store.Clear(); err != nil {
		e.logger.Warn("could not clear save", "error", err)
	}
}

// Close detaches the engine from its grid.
func (e *Engine) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.ledger.Current()
}

// Pending returns the flipped but unresolved cards (0, 1 or 2).
func (e *Engine) Pending() []CardView {
	out := make([]CardView, len(e.pending))
	for i, c := range e.pending {
		out[i] = c.View()
	}
	return out
}

// Grid returns the active grid, or nil before Start.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Snapshot captures the current board and score.
func (e *Engine) Snapshot() Snapshot {
	if e.grid == nil {
		return Snapshot{Score: e.ledger.Current()}
	}
	return TakeSnapshot(e.grid, e.ledger.Current())
}

// Moves returns the number of resolved turns since the board was dealt
// or resumed.
func (e *Engine) Moves() int {
	return e.moves
}

// Matches returns the number of pairs found.
func (e *Engine) Matches() int {
	return e.matches
}

// Pairs returns the number of pairs on the board.
func (e *Engine) Pairs() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.Len() / 2
}

// Now returns engine time.
func (e *Engine) Now() time.Duration {
	return e.sched.Now()
}

// HasSave reports whether the store holds a resumable game.
func (e *Engine) HasSave() bool {
	return e.store.Exists()
}
