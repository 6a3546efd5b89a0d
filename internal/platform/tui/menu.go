package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

// menu stages
const (
	stageMode = iota
	stageLevel
)

// MenuResult holds the outcome of running the menu.
type MenuResult struct {
	ModeID          string
	LevelID         string // empty means full campaign
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	modes  []registry.GameInfo
	levels []leveldata.Def

	stage  int
	cursor int

	width  int
	height int

	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	openScoreboard bool
	selectedMode   string
	selectedLevel  string
	done           bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		modes:     registry.List(),
		stage:     stageMode,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
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

// itemCount returns the number of rows in the current stage.
func (m MenuModel) itemCount() int {
	if m.stage == stageLevel {
		// First row is the full campaign.
		return len(m.levels) + 1
	}
	return len(m.modes)
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.stage == stageLevel {
			m.stage = stageMode
			m.cursor = 0
			m.selectedMode = ""
		}

	case MenuActionSelect:
		return m.handleSelect()

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// handleSelect advances from mode to level picking, then exits with a
// full selection.
func (m MenuModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.stage == stageMode {
		if len(m.modes) == 0 {
			return m, nil
		}
		m.selectedMode = m.modes[m.cursor].ID
		m.levels = leveldata.ByMode(m.selectedMode)
		m.stage = stageLevel
		m.cursor = 0
		return m, nil
	}

	if m.cursor == 0 {
		m.selectedLevel = "" // full campaign
	} else {
		m.selectedLevel = m.levels[m.cursor-1].ID
	}
	m.done = true
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  S H R E D  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.stage == stageMode {
		b.WriteString(centerText("Pick your ride", m.width))
		b.WriteString("\n\n")
		for i, mode := range m.modes {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+mode.Title, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Pick a level", m.width))
		b.WriteString("\n\n")

		cursor := "  "
		if m.cursor == 0 {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+"Full Campaign", m.width))
		b.WriteString("\n")

		for i, def := range m.levels {
			cursor := "  "
			if m.cursor == i+1 {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s (%s)", cursor, def.Name, def.Difficulty)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	if m.stage == stageLevel {
		controls = "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	}
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Selection returns the chosen mode and level; valid when Done.
func (m MenuModel) Selection() (modeID, levelID string) {
	return m.selectedMode, m.selectedLevel
}

// Done returns true when a mode and level have been picked.
func (m MenuModel) Done() bool {
	return m.done
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

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Done():
		result.ModeID, result.LevelID = m.Selection()
	default:
		result.Quit = true
	}

	return result, nil
}
