package core

import (
	"errors"
	"time"
)

// zeroSource always picks the current position, so Shuffle leaves
// Pairs in order: 0,0,1,1,...
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

type cardEvent struct {
	view CardView
	t    Transition
}

// recorder implements every collaborator and records what it is told.
type recorder struct {
	events []cardEvent
	scores []int

	flips      int
	matches    int
	mismatches int
	gameOvers  int

	onMatch    func()
	onMismatch func()
}

func (r *recorder) CardChanged(view CardView, t Transition) {
	r.events = append(r.events, cardEvent{view: view, t: t})
}

func (r *recorder) ScoreChanged(score int) {
	r.scores = append(r.scores, score)
}

func (r *recorder) Flip() { r.flips++ }

func (r *recorder) Match() {
	r.matches++
	if r.onMatch != nil {
		r.onMatch()
	}
}

func (r *recorder) Mismatch() {
	r.mismatches++
	if r.onMismatch != nil {
		r.onMismatch()
	}
}

func (r *recorder) GameOver() { r.gameOvers++ }

func (r *recorder) count(t Transition) int {
	n := 0
	for _, e := range r.events {
		if e.t == t {
			n++
		}
	}
	return n
}

// countingStore wraps MemoryStore and counts writes.
type countingStore struct {
	*MemoryStore
	saves  int
	clears int
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: NewMemoryStore()}
}

func (s *countingStore) Save(snap Snapshot) error {
	s.saves++
	return s.MemoryStore.Save(snap)
}

func (s *countingStore) Clear() error {
	s.clears++
	return s.MemoryStore.Clear()
}

var errBroken = errors.New("broken")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Exists() bool                  { return true }
func (brokenStore) Save(Snapshot) error           { return errBroken }
func (brokenStore) Load() (Snapshot, bool, error) { return Snapshot{}, false, errBroken }
func (brokenStore) Clear() error                  { return errBroken }

// mapKV is an in-memory KeyValueStore.
type mapKV map[string]string

func (m mapKV) Has(key string) (bool, error) {
	_, ok := m[key]
	return ok, nil
}

func (m mapKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m mapKV) Delete(key string) error {
	delete(m, key)
	return nil
}

func testConfig(rows, cols int) Config {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.PreviewDuration = 0
	return cfg
}

func newTestEngine(cfg Config, store SaveStore) (*Engine, *recorder) {
	rec := &recorder{}
	e := NewEngine(cfg, Deps{
		Store:        store,
		Renderer:     rec,
		Audio:        rec,
		ScoreDisplay: rec,
		Source:       zeroSource{},
	})
	return e, rec
}

const hideDelay = time.Second
