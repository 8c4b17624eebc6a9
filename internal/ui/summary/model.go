// Package summary displays the plain-text result of finalizing a
// checklist until the user dismisses it.
package summary

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paul0Junior/checklist-eng/internal/theme"
)

// DismissedMsg is dispatched when the user closes the summary.
type DismissedMsg struct{}

// Model is the Bubble Tea model for the finalize summary panel.
type Model struct {
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new summary model.
func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width-4, height-4),
		width:    width,
		height:   height,
	}
}

// SetSummary installs the summary text and scrolls to the top.
func (m *Model) SetSummary(text string) {
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 4
}

// Update handles messages for the summary panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return DismissedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the summary panel.
func (m Model) View() string {
	header := theme.SuccessStyle.Render("Checklist finalizado com sucesso!")
	hint := theme.HelpStyle.Render("esc para voltar")

	return theme.SummaryStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), "", hint),
	)
}
