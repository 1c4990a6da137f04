// Package config provides YAML-based game configuration loading and
// difficulty presets for Glitch Memory.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidBoard is returned for boards without rows/columns or larger than MaxBoardSide.
	ErrInvalidBoard = errors.New("config: invalid board size")

	// ErrOddCardCount is returned when rows*cols cannot be split into pairs.
	ErrOddCardCount = errors.New("config: rows*cols must be even")

	// ErrInvalidTiming is returned for negative delays.
	ErrInvalidTiming = errors.New("config: timings must not be negative")

	// ErrInvalidScoring is returned for negative point values.
	ErrInvalidScoring = errors.New("config: scoring values must not be negative")

	// ErrInvalidSymbols is returned for symbols that are not one visible
	// character, or that repeat.
	ErrInvalidSymbols = errors.New("config: symbols must be distinct single characters")
)

// MaxBoardSide bounds rows and cols so the board fits a terminal.
const MaxBoardSide = 8

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Symbols []string      `yaml:"symbols"`
	Cues    CueConfig     `yaml:"cues"`
}

// BoardConfig defines the grid layout.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Spacing int `yaml:"spacing"` // Blank cells between cards, layout only
}

// TimingConfig defines the engine delays.
type TimingConfig struct {
	PreviewDuration   time.Duration `yaml:"preview_duration"`
	MismatchHideDelay time.Duration `yaml:"mismatch_hide_delay"`
	MatchPopDelay     time.Duration `yaml:"match_pop_delay"`
}

// ScoringConfig defines score deltas.
type ScoringConfig struct {
	MatchPoints     int `yaml:"match_points"`
	MismatchPenalty int `yaml:"mismatch_penalty"`
}

// CueConfig maps each audio cue to its terminal rendition.
type CueConfig struct {
	Flip     Cue `yaml:"flip"`
	Match    Cue `yaml:"match"`
	Mismatch Cue `yaml:"mismatch"`
	GameOver Cue `yaml:"game_over"`
}

// Cue is a banner text and an optional terminal bell.
// A cue with neither is treated as missing and skipped.
type Cue struct {
	Text string `yaml:"text"`
	Bell bool   `yaml:"bell"`
}

// Empty reports whether the cue has nothing to play.
func (c Cue) Empty() bool {
	return c.Text == "" && !c.Bell
}

// Validate checks the config before a game starts.
func (c MemoryConfig) Validate() error {
	b := c.Board
	if b.Rows <= 0 || b.Cols <= 0 || b.Rows > MaxBoardSide || b.Cols > MaxBoardSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, b.Rows, b.Cols)
	}
	if (b.Rows*b.Cols)%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddCardCount, b.Rows, b.Cols)
	}
	if b.Spacing < 0 {
		return fmt.Errorf("%w: spacing %d", ErrInvalidBoard, b.Spacing)
	}

	t := c.Timing
	if t.PreviewDuration < 0 || t.MismatchHideDelay < 0 || t.MatchPopDelay < 0 {
		return ErrInvalidTiming
	}

	if c.Scoring.MatchPoints < 0 || c.Scoring.MismatchPenalty < 0 {
		return ErrInvalidScoring
	}

	seen := make(map[string]bool, len(c.Symbols))
	for i, sym := range c.Symbols {
		r, _ := utf8.DecodeRuneInString(sym)
		if utf8.RuneCountInString(sym) != 1 || r == utf8.RuneError || unicode.IsSpace(r) {
			return fmt.Errorf("%w: symbol %d is %q", ErrInvalidSymbols, i, sym)
		}
		if seen[sym] {
			return fmt.Errorf("%w: %q repeats", ErrInvalidSymbols, sym)
		}
		seen[sym] = true
	}
	return nil
}

// Pairs returns the number of card pairs on the board.
func (c MemoryConfig) Pairs() int {
	return c.Board.Rows * c.Board.Cols / 2
}
