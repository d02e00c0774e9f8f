package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cyberarcade/neon-arcade/internal/core"
	"github.com/cyberarcade/neon-arcade/internal/registry"
	"github.com/cyberarcade/neon-arcade/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// menuChoice is how the player left the menu.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceGame
	choiceScoreboard
	choiceQuit
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    menuChoice
}

// NewMenuModel lists every registered game with its stored best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if best, err := store.LoadHighScore(g.ID); err == nil {
			items[i].HighScore = best
		}
	}

	return MenuModel{
		items:     items,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		return m, nil
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.choice = choiceGame
	case MenuActionScoreboard:
		m.choice = choiceScoreboard
	case MenuActionQuit, MenuActionBack:
		m.choice = choiceQuit
	default:
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		row := fmt.Sprintf("  %-16s HI %6d", item.Title, item.HighScore)
		if i == m.cursor {
			row = accentStyle.Render(fmt.Sprintf("> %-16s HI %6d", item.Title, item.HighScore))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, mutedStyle.Render("No games installed"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("C Y B E R P U N K   A R C A D E"),
		"",
		mutedStyle.Render("Select a game"),
		"",
		strings.Join(rows, "\n"),
		"",
		mutedStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig // Updated by resizes while the menu was shown
	WantsScoreboard bool
	Quit            bool
}

// Result describes how the menu was left. A menu that is still open
// reports neither a game nor a quit.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch m.choice {
	case choiceGame:
		r.GameID = m.items[m.cursor].GameID
	case choiceScoreboard:
		r.WantsScoreboard = true
	case choiceQuit:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	r := m.Result()
	if r.GameID == "" && !r.WantsScoreboard {
		// Closed without a choice, e.g. by a signal
		r.Quit = true
	}
	return r, nil
}
