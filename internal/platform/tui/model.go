package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iamraziq/glitch-memory/internal/config"
	"github.com/iamraziq/glitch-memory/internal/core"
	"github.com/iamraziq/glitch-memory/internal/registry"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

// boardReporter is implemented by games that know their board size and
// move count, so finished runs can be recorded with them.
type boardReporter interface {
	Board() (rows, cols int)
	Moves() int
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	quitOnBack bool // standalone programs exit on Back
	quitting   bool
	backToMenu bool
	scoreSaved bool // score already recorded for the current game over
	ringBell   bool
	lastRunID  string
}

// NewGameModel creates a game model. store may be nil; then nothing is
// recorded and the game keeps its save in memory only.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if store != nil {
		cfg.Settings = store
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
	}
}

// Init starts (or resumes) the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The board is laid out at render time, so a resize only
		// touches the buffer and the game keeps running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.ringBell = false
	if b, ok := m.game.(beller); ok {
		m.ringBell = b.TakeBell()
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the finished board. Failures are logged and the
// game goes on.
func (m *GameModel) recordScore() {
	if m.store == nil {
		return
	}

	rec := storage.ScoreRecord{
		GameID:  m.game.ID(),
		Profile: m.config.Profile,
		Score:   m.gameState.Score,
	}
	if br, ok := m.game.(boardReporter); ok {
		rec.Rows, rec.Cols = br.Board()
		rec.Moves = br.Moves()
	}

	runID, err := m.store.SaveScore(rec)
	if err != nil {
		m.logger.Error("cannot record score", "error", err)
		return
	}
	m.lastRunID = runID
	m.logger.Info("board cleared",
		"run", runID,
		"score", rec.Score,
		"moves", rec.Moves,
		"board", fmt.Sprintf("%dx%d", rec.Rows, rec.Cols),
	)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)
	if m.ringBell {
		frame = bell + frame
	}
	return frame
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastRunID returns the run ID of the last recorded score, if any.
func (m GameModel) LastRunID() string {
	return m.lastRunID
}

// RunResult is how a standalone game ended.
type RunResult struct {
	BackToMenu bool
	LastRunID  string // last recorded score, if any
}

// Run plays game until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (RunResult, error) {
	model := NewGameModel(game, store, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	if gm, ok := final.(GameModel); ok {
		return RunResult{BackToMenu: gm.BackToMenu(), LastRunID: gm.LastRunID()}, nil
	}
	return RunResult{}, nil
}
