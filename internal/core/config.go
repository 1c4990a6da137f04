package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Settings is an optional key-value store for games that keep
	// in-progress state between runs. Nil means nothing is persisted.
	Settings KeyValueStore

	// Profile namespaces persisted state (e.g. the SSH user name).
	// Empty means the default, shared slot.
	Profile string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// KeyValueStore is a string settings store with a handful of operations.
// The storage package implements it on top of SQLite.
type KeyValueStore interface {
	Has(key string) (bool, error)
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
