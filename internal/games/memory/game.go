// Package memory adapts the memory engine to the platform's Game
// interface: a cursor over the board, key-driven flips, and terminal
// stand-ins for the renderer, audio and score display.
package memory

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iamraziq/glitch-memory/internal/config"
	"github.com/iamraziq/glitch-memory/internal/core"
	memcore "github.com/iamraziq/glitch-memory/internal/games/memory/core"
	"github.com/iamraziq/glitch-memory/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "memory"

// Package-level settings applied on the next Reset, so CLI flags reach
// registry-created instances.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom memory.yaml path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the board preset used by the next game.
// The empty preset keeps the board from the config file.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the config the same way Reset does: file search,
// then the preset, falling back to defaults when the result is invalid.
func LoadConfig() config.MemoryConfig {
	return LoadConfigWith(difficultyPreset)
}

// LoadConfigWith is LoadConfig with an explicit preset, for callers that
// run several games at once (SSH sessions).
func LoadConfigWith(preset config.DifficultyPreset) config.MemoryConfig {
	cfg, err := config.LoadMemory(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultMemoryConfig()
	}
	if preset != "" {
		config.ApplyMemoryPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultMemoryConfig()
	}
	return cfg
}

// Game is the memory game as seen by the platform.
type Game struct {
	fixed *config.MemoryConfig // set by NewWithConfig
	cfg   config.MemoryConfig

	engine *memcore.Engine
	local  *memcore.MemoryStore // slot used when no settings store is given
	board  *boardView
	hud    *hud
	faces  []rune // glyph per pair id

	tick     uint64
	tickRate int
	paused   bool

	cursorRow int
	cursorCol int
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, ignoring the
// package-level path and preset.
func NewWithConfig(cfg config.MemoryConfig) *Game {
	return &Game{fixed: &cfg}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Glitch Memory"
}

// Reset builds a new engine and starts it. If the runtime config has a
// settings store the saved game for its profile is resumed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		g.cfg = LoadConfig()
	}

	g.tick = 0
	g.paused = false
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	var store memcore.SaveStore
	if cfg.Settings != nil {
		store = memcore.NewKVStore(cfg.Settings, cfg.Profile)
	} else {
		if g.local == nil {
			g.local = memcore.NewMemoryStore()
		}
		store = g.local
	}

	g.board = newBoardView(g.tickRate)
	g.hud = newHUD(g.cfg.Cues, g.tickRate)
	// A resumed save may be larger than the configured board.
	g.faces = faceTable(g.cfg.Symbols, memcore.MaxGridSide*memcore.MaxGridSide/2)

	if g.engine != nil {
		g.engine.Close()
	}
	g.engine = memcore.NewEngine(EngineConfig(g.cfg), memcore.Deps{
		Store:        store,
		Renderer:     g.board,
		Audio:        g.hud,
		ScoreDisplay: g.hud,
		Source:       memcore.NewSource(cfg.Seed),
		Logger:       logger.With("profile", cfg.Profile),
	})
	g.engine.Start()
	g.clampCursor()
}

// EngineConfig converts the file config to engine settings.
func EngineConfig(c config.MemoryConfig) memcore.Config {
	return memcore.Config{
		Rows:              c.Board.Rows,
		Cols:              c.Board.Cols,
		PreviewDuration:   c.Timing.PreviewDuration,
		MismatchHideDelay: c.Timing.MismatchHideDelay,
		MatchPopDelay:     c.Timing.MatchPopDelay,
		MatchPoints:       c.Scoring.MatchPoints,
		MismatchPenalty:   c.Scoring.MismatchPenalty,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.engine.NewGame()
		g.paused = false
		g.cursorRow, g.cursorCol = 0, 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.engine.State() != memcore.StateComplete {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.engine.Advance(time.Second / time.Duration(g.tickRate))
	g.board.step()
	g.hud.step()

	return core.StepResult{State: g.State()}
}

func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursorRow--
	case input.Has(core.ActionDown):
		g.cursorRow++
	case input.Has(core.ActionLeft):
		g.cursorCol--
	case input.Has(core.ActionRight):
		g.cursorCol++
	}
	g.clampCursor()

	if input.Has(core.ActionFlip) || input.Has(core.ActionConfirm) {
		g.engine.Select(g.CursorIndex())
	}
}

func (g *Game) clampCursor() {
	grid := g.engine.Grid()
	if grid == nil {
		return
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, grid.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, grid.Cols()-1)
}

// CursorIndex returns the row-major index under the cursor.
func (g *Game) CursorIndex() int {
	grid := g.engine.Grid()
	if grid == nil {
		return -1
	}
	return grid.IndexOf(g.cursorRow, g.cursorCol)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() == memcore.StateComplete,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *memcore.Engine {
	return g.engine
}

// Config returns the config of the current game.
func (g *Game) Config() config.MemoryConfig {
	return g.cfg
}

// Board returns the size of the current board.
func (g *Game) Board() (rows, cols int) {
	grid := g.engine.Grid()
	if grid == nil {
		return 0, 0
	}
	return grid.Rows(), grid.Cols()
}

// Moves returns the number of resolved turns.
func (g *Game) Moves() int {
	return g.engine.Moves()
}

// TakeBell reports whether a cue asked for the terminal bell since the
// last call.
func (g *Game) TakeBell() bool {
	return g.hud.takeBell()
}

// HasSave reports whether kv holds a resumable game for profile.
func HasSave(kv core.KeyValueStore, profile string) bool {
	if kv == nil {
		return false
	}
	return memcore.NewKVStore(kv, profile).Exists()
}

// ClearSave deletes the saved game for profile.
func ClearSave(kv core.KeyValueStore, profile string) error {
	return memcore.NewKVStore(kv, profile).Clear()
}

// KeyLister is a settings store that can list its keys.
type KeyLister interface {
	core.KeyValueStore
	Keys(prefix string) ([]string, error)
}

// SaveProfiles returns the profiles with a saved game. The default
// profile is reported as "".
func SaveProfiles(kv KeyLister) ([]string, error) {
	keys, err := kv.Keys(memcore.DefaultSaveKey)
	if err != nil {
		return nil, err
	}
	var profiles []string
	for _, k := range keys {
		if k == memcore.DefaultSaveKey {
			profiles = append(profiles, "")
			continue
		}
		if p, ok := strings.CutPrefix(k, memcore.DefaultSaveKey+":"); ok {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// ClearAllSaves deletes the saved game of every profile and returns how
// many were removed.
func ClearAllSaves(kv KeyLister) (int, error) {
	profiles, err := SaveProfiles(kv)
	if err != nil {
		return 0, err
	}
	for i, p := range profiles {
		if err := ClearSave(kv, p); err != nil {
			return i, fmt.Errorf("clear save of %q: %w", p, err)
		}
	}
	return len(profiles), nil
}
