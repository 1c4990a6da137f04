package core

import (
	"encoding/json"
	"fmt"
)

// CardState is the persisted form of one card.
type CardState struct {
	CardID    int  `json:"cardId"`
	IsMatched bool `json:"isMatched"`
	IsFlipped bool `json:"isFlipped"`
}

// Snapshot is the full save record: grid size, score and every card.
type Snapshot struct {
	Score    int         `json:"score"`
	GridRows int         `json:"gridRows"`
	GridCols int         `json:"gridCols"`
	Cards    []CardState `json:"cards"`
}

// Validate checks that the snapshot describes a grid that can be rebuilt.
// The card list length is not checked; short or long lists are restored
// partially.
func (s Snapshot) Validate() error {
	if s.GridRows <= 0 || s.GridCols <= 0 {
		return fmt.Errorf("snapshot grid %dx%d: %w", s.GridRows, s.GridCols, ErrEmptyGrid)
	}
	if s.GridRows > MaxGridSide || s.GridCols > MaxGridSide {
		return fmt.Errorf("snapshot grid %dx%d: %w", s.GridRows, s.GridCols, ErrGridTooLarge)
	}
	if (s.GridRows*s.GridCols)%2 != 0 {
		return fmt.Errorf("snapshot grid %dx%d: %w", s.GridRows, s.GridCols, ErrOddCardCount)
	}
	return nil
}

// TakeSnapshot captures the grid and score.
func TakeSnapshot(g *Grid, score int) Snapshot {
	snap := Snapshot{
		Score:    score,
		GridRows: g.Rows(),
		GridCols: g.Cols(),
		Cards:    make([]CardState, 0, g.Len()),
	}
	for _, c := range g.cards {
		snap.Cards = append(snap.Cards, CardState{
			CardID:    c.id,
			IsMatched: c.matched,
			IsFlipped: c.flipped,
		})
	}
	return snap
}

// EncodeSnapshot serializes a snapshot to its JSON record.
func EncodeSnapshot(s Snapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a JSON record produced by EncodeSnapshot.
func DecodeSnapshot(data string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.Cards != nil {
		out.Cards = make([]CardState, len(s.Cards))
		copy(out.Cards, s.Cards)
	}
	return out
}
