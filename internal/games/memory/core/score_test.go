package core

import (
	"slices"
	"testing"
)

func TestLedger(t *testing.T) {
	rec := &recorder{}
	l := NewLedger(rec)

	l.Add(10)
	l.Subtract(2)
	l.Subtract(20)

	if l.Current() != -12 {
		t.Errorf("score = %d, want -12", l.Current())
	}

	l.Set(35)
	if l.Current() != 35 {
		t.Errorf("score after Set = %d, want 35", l.Current())
	}

	if !slices.Equal(rec.scores, []int{10, 8, -12, 35}) {
		t.Errorf("display saw %v", rec.scores)
	}
}

func TestLedgerNilDisplay(t *testing.T) {
	l := NewLedger(nil)
	l.Add(1)
	if l.Current() != 1 {
		t.Errorf("score = %d", l.Current())
	}
}
