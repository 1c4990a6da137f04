package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iamraziq/glitch-memory/internal/config"
	"github.com/iamraziq/glitch-memory/internal/core"
	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

// MenuChoice is what a menu entry does when selected.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceScoreboard
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	Preset config.DifficultyPreset // for ChoiceNewGame
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model. "Continue" is offered when the
// profile in cfg has a saved game in store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem

	if store != nil && memory.HasSave(store, cfg.Profile) {
		items = append(items, MenuItem{Label: "Continue", Choice: ChoiceContinue})
	}
	for _, p := range config.Presets() {
		label := fmt.Sprintf("New game: %s (%s)", strings.ToUpper(string(p[:1]))+string(p[1:]), p.Describe())
		items = append(items, MenuItem{Label: label, Choice: ChoiceNewGame, Preset: p})
	}
	items = append(items,
		MenuItem{Label: "High scores", Choice: ChoiceScoreboard},
		MenuItem{Label: "Quit", Choice: ChoiceQuit},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
		} else {
			m.selected = &selected
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G L I T C H   M E M O R Y", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Find every pair", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Items returns the menu entries in display order.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Selected().Choice,
		Preset: m.Selected().Preset,
		Config: m.Config(),
	}, nil
}

// StartGame prepares a game for a menu choice: a new game clears the
// profile's save so Reset starts fresh, Continue keeps it.
func StartGame(res MenuResult, store *storage.Store) (*memory.Game, error) {
	if res.Choice == ChoiceNewGame && store != nil {
		if err := memory.ClearSave(store, res.Config.Profile); err != nil {
			return nil, err
		}
	}
	preset := res.Preset
	if res.Choice == ChoiceContinue {
		preset = ""
	}
	return memory.NewWithConfig(memory.LoadConfigWith(preset)), nil
}
