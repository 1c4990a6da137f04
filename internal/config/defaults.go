package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: BoardConfig{
			Rows:    4,
			Cols:    4,
			Spacing: 1,
		},
		Timing: TimingConfig{
			PreviewDuration:   2 * time.Second,
			MismatchHideDelay: time.Second,
			MatchPopDelay:     500 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			MatchPoints:     10,
			MismatchPenalty: 2,
		},
		Symbols: []string{"@", "#", "$", "%", "&", "*", "+", "=", "?", "!", "~", "^", "<", ">", "{", "}", "[", "]"},
		Cues: CueConfig{
			Match:    Cue{Text: "MATCH!"},
			Mismatch: Cue{Text: "NOPE", Bell: true},
			GameOver: Cue{Text: "BOARD CLEARED", Bell: true},
		},
	}
}
