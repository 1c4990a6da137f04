package core

import "testing"

func newTestGrid(t *testing.T, ids ...int) (*Grid, *recorder) {
	t.Helper()
	rec := &recorder{}
	g, err := NewGridFromIDs(1, len(ids), ids, rec)
	if err != nil {
		t.Fatalf("NewGridFromIDs: %v", err)
	}
	return g, rec
}

func TestCardRevealGuards(t *testing.T) {
	g, _ := newTestGrid(t, 0, 0)
	c := g.Card(0)

	if !c.Reveal() {
		t.Fatal("first reveal should succeed")
	}
	if c.Reveal() {
		t.Error("reveal of a face-up card should be a no-op")
	}

	c.MarkMatched()
	c.flipped = false // force the guard on matched alone
	if c.Reveal() {
		t.Error("reveal of a matched card should be a no-op")
	}
}

func TestHideOnMatchedCardIsNoop(t *testing.T) {
	g, rec := newTestGrid(t, 0, 0)
	c := g.Card(0)
	c.MarkMatched()
	before := len(rec.events)

	for range 3 {
		if c.Hide() {
			t.Fatal("hide of a matched card must fail")
		}
	}

	if !c.IsMatched() || !c.IsFlipped() {
		t.Errorf("matched card changed: flipped=%v matched=%v", c.IsFlipped(), c.IsMatched())
	}
	if len(rec.events) != before {
		t.Error("rejected hide should not notify the renderer")
	}
}

func TestRestoreInstantMatchedForcesFlipped(t *testing.T) {
	g, rec := newTestGrid(t, 0, 0)
	c := g.Card(1)

	c.RestoreInstant(false, true)

	if !c.IsFlipped() || !c.IsMatched() {
		t.Errorf("expected flipped matched card, got flipped=%v matched=%v", c.IsFlipped(), c.IsMatched())
	}
	if rec.count(TransitionRestore) != 1 {
		t.Errorf("expected 1 restore notification, got %d", rec.count(TransitionRestore))
	}
}

func TestSelectEmitsOnce(t *testing.T) {
	g, _ := newTestGrid(t, 0, 0)

	var flipped []int
	g.Subscribe(FlipListenerFunc(func(c *Card) {
		flipped = append(flipped, c.Index())
	}))

	g.Card(0).Select()
	g.Card(0).Select()
	g.Card(1).RestoreInstant(true, false)

	if len(flipped) != 1 || flipped[0] != 0 {
		t.Errorf("expected one flip signal for card 0, got %v", flipped)
	}
}

func TestCardNotifiesRenderer(t *testing.T) {
	g, rec := newTestGrid(t, 4, 4)
	c := g.Card(0)

	c.Reveal()
	c.Hide()
	c.MarkMatched()

	want := []Transition{TransitionReveal, TransitionHide, TransitionMatch}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.events))
	}
	for i, tr := range want {
		if rec.events[i].t != tr {
			t.Errorf("event %d: got %v, want %v", i, rec.events[i].t, tr)
		}
		if rec.events[i].view.ID != 4 {
			t.Errorf("event %d: wrong card id %d", i, rec.events[i].view.ID)
		}
	}
}
