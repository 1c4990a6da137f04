package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

type presetValues struct {
	rows    int
	cols    int
	preview time.Duration
}

var presets = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {rows: 2, cols: 4, preview: 3 * time.Second},
	DifficultyNormal: {rows: 4, cols: 4, preview: 2 * time.Second},
	DifficultyHard:   {rows: 6, cols: 6, preview: 1500 * time.Millisecond},
}

// Presets returns the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset. The empty string is
// DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// Describe returns a short label such as "4x4, 8 pairs".
func (p DifficultyPreset) Describe() string {
	v, ok := presets[p]
	if !ok {
		return string(p)
	}
	return fmt.Sprintf("%dx%d, %d pairs", v.rows, v.cols, v.rows*v.cols/2)
}

// ApplyMemoryPreset overrides the board size and preview time with the
// preset's values. Unknown presets leave cfg unchanged.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	v, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Board.Rows = v.rows
	cfg.Board.Cols = v.cols
	cfg.Timing.PreviewDuration = v.preview
}
