package core

import (
	"errors"
	"testing"
)

func TestNewGridLayout(t *testing.T) {
	g, err := NewGrid(3, 4, NewSource(1), nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if g.Len() != 12 {
		t.Fatalf("expected 12 cards, got %d", g.Len())
	}
	for i, c := range g.Cards() {
		if c.Index() != i {
			t.Errorf("card %d has index %d", i, c.Index())
		}
		if c.IsFlipped() || c.IsMatched() {
			t.Errorf("card %d should start face down", i)
		}
	}

	if got := g.IndexOf(2, 3); got != 11 {
		t.Errorf("IndexOf(2,3) = %d, want 11", got)
	}
	if got := g.IndexOf(3, 0); got != -1 {
		t.Errorf("IndexOf out of range = %d, want -1", got)
	}
	if g.At(1, 2) != g.Card(6) {
		t.Error("At(1,2) should be row-major card 6")
	}
	if g.Card(12) != nil || g.Card(-1) != nil {
		t.Error("out of range Card should be nil")
	}
}

func TestNewGridRejectsOddBoards(t *testing.T) {
	if _, err := NewGrid(3, 3, NewSource(1), nil); !errors.Is(err, ErrOddCardCount) {
		t.Errorf("3x3 error = %v, want ErrOddCardCount", err)
	}
	if _, err := NewGrid(0, 4, NewSource(1), nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("0x4 error = %v, want ErrEmptyGrid", err)
	}
	if _, err := NewGrid(2, MaxGridSide+2, NewSource(1), nil); !errors.Is(err, ErrGridTooLarge) {
		t.Errorf("2x10 error = %v, want ErrGridTooLarge", err)
	}
	if _, err := NewGridFromIDs(2, 2, []int{0, 0}, nil); err == nil {
		t.Error("expected error for short id list")
	}
}

func TestGridUnsubscribe(t *testing.T) {
	g, _ := newTestGrid(t, 0, 0, 1, 1)

	calls := 0
	unsubscribe := g.Subscribe(FlipListenerFunc(func(*Card) { calls++ }))

	g.Card(0).Select()
	unsubscribe()
	unsubscribe()
	g.Card(1).Select()

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestGridPreviewBulkOps(t *testing.T) {
	g, _ := newTestGrid(t, 0, 0, 1, 1)
	g.Card(2).MarkMatched()
	g.Card(3).MarkMatched()

	g.RevealAllInstant()
	for _, c := range g.Cards() {
		if !c.IsFlipped() {
			t.Errorf("card %d should be face up during preview", c.Index())
		}
	}

	g.HideUnmatchedInstant()
	for _, c := range g.Cards() {
		if c.IsMatched() != c.IsFlipped() {
			t.Errorf("card %d: flipped=%v matched=%v", c.Index(), c.IsFlipped(), c.IsMatched())
		}
	}
	if g.MatchedCount() != 2 {
		t.Errorf("matched count = %d, want 2", g.MatchedCount())
	}
	if g.AllMatched() {
		t.Error("grid should not be complete")
	}
}
