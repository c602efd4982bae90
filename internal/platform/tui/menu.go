package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// BoardMenuModel is the Bubble Tea model for the board preset picker.
type BoardMenuModel struct {
	items    []config.BoardPreset
	cursor   int
	width    int
	height   int
	quitting bool
	selected *config.BoardPreset
}

// NewBoardMenuModel creates a menu listing every board preset.
func NewBoardMenuModel(width, height int) BoardMenuModel {
	return BoardMenuModel{
		items:  config.BoardPresets(),
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m BoardMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m BoardMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m BoardMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m BoardMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %3dx%-3d", item.Title, item.Width, item.Height)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-8s %3dx%-3d", item.Title, item.Width, item.Height))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuFooterStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected preset, or nil if none was selected.
func (m BoardMenuModel) Selected() *config.BoardPreset {
	return m.selected
}

// IsQuitting returns true if the user left the menu without choosing.
func (m BoardMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunBoardMenu shows the board picker. It returns nil when the user quits.
func RunBoardMenu(width, height int) (*config.BoardPreset, error) {
	p := tea.NewProgram(
		NewBoardMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BoardMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
