package core

import "fmt"

// Grid owns the cards of one game and addresses them row-major.
// A new game or a load always builds a new Grid; cards are never shared.
type Grid struct {
	rows     int
	cols     int
	cards    []*Card
	renderer Renderer

	listeners  []listenerEntry
	listenerID int
}

type listenerEntry struct {
	id int
	l  FlipListener
}

// NewGrid generates a rows x cols grid with shuffled pairs.
func NewGrid(rows, cols int, src Source, r Renderer) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows > MaxGridSide || cols > MaxGridSide {
		return nil, ErrGridTooLarge
	}
	ids, err := GenerateIDs(rows*cols, src)
	if err != nil {
		return nil, err
	}
	return NewGridFromIDs(rows, cols, ids, r)
}

// NewGridFromIDs builds a grid with a fixed id layout.
// len(ids) must equal rows*cols.
func NewGridFromIDs(rows, cols int, ids []int, r Renderer) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows > MaxGridSide || cols > MaxGridSide {
		return nil, ErrGridTooLarge
	}
	if len(ids) != rows*cols {
		return nil, fmt.Errorf("grid %dx%d needs %d ids, got %d", rows, cols, rows*cols, len(ids))
	}
	if r == nil {
		r = nopRenderer{}
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		cards:    make([]*Card, len(ids)),
		renderer: r,
	}
	for i, id := range ids {
		g.cards[i] = &Card{index: i, id: id, owner: g}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cards (rows*cols).
func (g *Grid) Len() int {
	return len(g.cards)
}

// Card returns the card at a row-major index, or nil if out of range.
func (g *Grid) Card(index int) *Card {
	if index < 0 || index >= len(g.cards) {
		return nil
	}
	return g.cards[index]
}

// IndexOf converts a row/column pair to a row-major index.
// Returns -1 for positions outside the grid.
func (g *Grid) IndexOf(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return -1
	}
	return row*g.cols + col
}

// At returns the card at row, col, or nil if out of range.
func (g *Grid) At(row, col int) *Card {
	return g.Card(g.IndexOf(row, col))
}

// Cards returns the cards in row-major order.
func (g *Grid) Cards() []*Card {
	out := make([]*Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// IDs returns the pair identifiers in row-major order.
func (g *Grid) IDs() []int {
	ids := make([]int, len(g.cards))
	for i, c := range g.cards {
		ids[i] = c.id
	}
	return ids
}

// MatchedCount returns how many cards are matched.
func (g *Grid) MatchedCount() int {
	n := 0
	for _, c := range g.cards {
		if c.matched {
			n++
		}
	}
	return n
}

// AllMatched reports whether every card has been matched.
func (g *Grid) AllMatched() bool {
	return len(g.cards) > 0 && g.MatchedCount() == len(g.cards)
}

// Subscribe registers a listener for player flips. The returned func
// removes it; calling it more than once is harmless.
func (g *Grid) Subscribe(l FlipListener) (unsubscribe func()) {
	g.listenerID++
	id := g.listenerID
	g.listeners = append(g.listeners, listenerEntry{id: id, l: l})

	return func() {
		for i, e := range g.listeners {
			if e.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid) emitFlipped(c *Card) {
	// Listeners may unsubscribe while being notified.
	snapshot := make([]listenerEntry, len(g.listeners))
	copy(snapshot, g.listeners)
	for _, e := range snapshot {
		e.l.CardFlipped(c)
	}
}

// RevealAllInstant shows every card face up without flip signals.
func (g *Grid) RevealAllInstant() {
	for _, c := range g.cards {
		c.RestoreInstant(true, c.matched)
	}
}

// HideUnmatchedInstant turns every unmatched card face down.
func (g *Grid) HideUnmatchedInstant() {
	for _, c := range g.cards {
		if !c.matched {
			c.RestoreInstant(false, false)
		}
	}
}

// restoreCard overwrites a card's id and flags from a saved state.
func (g *Grid) restoreCard(index int, st CardState) {
	c := g.Card(index)
	if c == nil {
		return
	}
	c.id = st.CardID
	c.RestoreInstant(st.IsFlipped, st.IsMatched)
}
