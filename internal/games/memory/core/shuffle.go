package core

import (
	"errors"
	"math/rand"
)

var (
	// ErrOddCardCount is returned when a grid cannot be split into pairs.
	ErrOddCardCount = errors.New("card count must be even")

	// ErrEmptyGrid is returned for grids without rows or columns.
	ErrEmptyGrid = errors.New("grid needs at least one row and one column")

	// ErrGridTooLarge is returned for grids with a side over MaxGridSide.
	ErrGridTooLarge = errors.New("grid side too large")
)

// MaxGridSide bounds rows and cols of any grid the engine builds.
const MaxGridSide = 8

// Source is the random source used for shuffling.
// *rand.Rand satisfies it, so tests can pass a seeded generator.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Pairs returns total/2 identifiers, each listed twice: 0,0,1,1,...
func Pairs(total int) []int {
	ids := make([]int, 0, total)
	for i := 0; i < total/2; i++ {
		ids = append(ids, i, i)
	}
	return ids
}

// Shuffle permutes ids in place (Fisher-Yates). Each position i is swapped
// with a uniformly chosen position in [i, len).
func Shuffle(ids []int, src Source) {
	for i := 0; i < len(ids); i++ {
		j := i + src.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// GenerateIDs builds the shuffled id sequence for a grid of total cards.
func GenerateIDs(total int, src Source) ([]int, error) {
	if total <= 0 {
		return nil, ErrEmptyGrid
	}
	if total%2 != 0 {
		return nil, ErrOddCardCount
	}

	ids := Pairs(total)
	Shuffle(ids, src)
	return ids, nil
}
