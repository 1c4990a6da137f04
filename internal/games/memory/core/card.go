package core

// Card is one cell of the grid. It only holds local state; the engine
// decides when it is revealed, hidden or matched.
type Card struct {
	index   int
	id      int
	flipped bool
	matched bool
	owner   *Grid
}

// Index returns the row-major position of the card in its grid.
func (c *Card) Index() int {
	return c.index
}

// ID returns the pair identifier. Exactly two cards share it.
func (c *Card) ID() int {
	return c.id
}

// IsFlipped reports whether the card is face up.
func (c *Card) IsFlipped() bool {
	return c.flipped
}

// IsMatched reports whether the card belongs to a found pair.
func (c *Card) IsMatched() bool {
	return c.matched
}

// View returns a copy of the card state.
func (c *Card) View() CardView {
	return CardView{
		Index:   c.index,
		ID:      c.id,
		Flipped: c.flipped,
		Matched: c.matched,
	}
}

// Reveal turns the card face up. Returns false (and does nothing)
// if the card is matched or already face up.
func (c *Card) Reveal() bool {
	if c.matched || c.flipped {
		return false
	}
	c.flipped = true
	c.notify(TransitionReveal)
	return true
}

// Hide turns the card face down. A matched card is never hidden.
func (c *Card) Hide() bool {
	if c.matched || !c.flipped {
		return false
	}
	c.flipped = false
	c.notify(TransitionHide)
	return true
}

// MarkMatched locks the card face up for the rest of the game.
func (c *Card) MarkMatched() {
	if c.matched {
		return
	}
	c.matched = true
	c.flipped = true
	c.notify(TransitionMatch)
}

// RestoreInstant sets both flags directly without emitting a flip signal.
// Used by load and by the preview window. matched implies flipped.
func (c *Card) RestoreInstant(flipped, matched bool) {
	c.flipped = flipped || matched
	c.matched = matched
	c.notify(TransitionRestore)
}

// Select is the player interaction path: it reveals the card and, on
// success, emits the flipped signal to the grid's listeners exactly once.
func (c *Card) Select() bool {
	if !c.Reveal() {
		return false
	}
	if c.owner != nil {
		c.owner.emitFlipped(c)
	}
	return true
}

func (c *Card) notify(t Transition) {
	if c.owner != nil {
		c.owner.renderer.CardChanged(c.View(), t)
	}
}
