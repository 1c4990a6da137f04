package core

import (
	"errors"
	"slices"
	"testing"
)

func TestGenerateIDsPairsEveryValue(t *testing.T) {
	src := NewSource(7)
	for total := 2; total <= 64; total += 2 {
		ids, err := GenerateIDs(total, src)
		if err != nil {
			t.Fatalf("GenerateIDs(%d): %v", total, err)
		}
		if len(ids) != total {
			t.Fatalf("GenerateIDs(%d) returned %d ids", total, len(ids))
		}

		counts := make(map[int]int)
		for _, id := range ids {
			counts[id]++
		}
		if len(counts) != total/2 {
			t.Errorf("total %d: expected %d distinct ids, got %d", total, total/2, len(counts))
		}
		for id, n := range counts {
			if n != 2 {
				t.Errorf("total %d: id %d appears %d times", total, id, n)
			}
		}
	}
}

func TestGenerateIDsRejectsBadTotals(t *testing.T) {
	tests := []struct {
		total int
		want  error
	}{
		{0, ErrEmptyGrid},
		{-4, ErrEmptyGrid},
		{3, ErrOddCardCount},
		{15, ErrOddCardCount},
	}

	for _, tt := range tests {
		_, err := GenerateIDs(tt.total, NewSource(1))
		if !errors.Is(err, tt.want) {
			t.Errorf("GenerateIDs(%d) error = %v, want %v", tt.total, err, tt.want)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	ids := Pairs(36)
	before := slices.Clone(ids)

	Shuffle(ids, NewSource(99))

	slices.Sort(before)
	after := slices.Clone(ids)
	slices.Sort(after)
	if !slices.Equal(before, after) {
		t.Error("shuffle changed the multiset of ids")
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a, err := GenerateIDs(16, NewSource(12345))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateIDs(16, NewSource(12345))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different layouts:\n%v\n%v", a, b)
	}
}

func TestShuffleZeroSourceKeepsOrder(t *testing.T) {
	ids := Pairs(6)
	Shuffle(ids, zeroSource{})
	if !slices.Equal(ids, []int{0, 0, 1, 1, 2, 2}) {
		t.Errorf("unexpected order %v", ids)
	}
}
