// Package checkform renders the daily checklist: task navigation,
// tri-state completion marking, observation editing, per-task
// submission, and the finalize action.
package checkform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paul0Junior/checklist-eng/internal/checklist"
	"github.com/Paul0Junior/checklist-eng/internal/keys"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/internal/theme"
)

// FinalizedMsg is dispatched when the whole checklist has been logged
// and the summary is ready to display.
type FinalizedMsg struct {
	Summary string
}

// LogoutMsg is dispatched when the user ends the session.
type LogoutMsg struct{}

// taskSubmittedMsg reports the outcome of a per-task submission.
type taskSubmittedMsg struct {
	description string
	err         error
}

// finalizeErrMsg reports a storage failure during finalize.
type finalizeErrMsg struct {
	err error
}

// taskRef addresses one task inside the checklist by section and
// position.
type taskRef struct {
	section int
	task    int
}

// Model is the Bubble Tea model for the checklist screen.
type Model struct {
	checklist model.Checklist
	session   model.Session
	recorder  *checklist.Recorder
	keys      *keys.KeyMap

	refs   []taskRef
	cursor int

	viewport viewport.Model

	editing bool
	input   textinput.Model

	status      string
	statusStyle lipgloss.Style

	width  int
	height int
}

// New creates a new checklist screen model.
func New(recorder *checklist.Recorder, km *keys.KeyMap, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Observação..."
	ti.Prompt = "> "
	ti.Width = width - 8

	return Model{
		recorder: recorder,
		keys:     km,
		viewport: viewport.New(width, height),
		input:    ti,
		width:    width,
		height:   height,
	}
}

// SetChecklist installs a freshly built checklist for the given
// session and resets the cursor.
func (m *Model) SetChecklist(cl model.Checklist, session model.Session) {
	m.checklist = cl
	m.session = session
	m.cursor = 0
	m.status = ""
	m.editing = false

	m.refs = m.refs[:0]
	for si := range cl.Sections {
		for ti := range cl.Sections[si].Tasks {
			m.refs = append(m.refs, taskRef{section: si, task: ti})
		}
	}
	m.syncViewport()
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	m.input.Width = width - 8
	m.syncViewport()
}

// Editing reports whether the observation input currently has focus,
// in which case printable keys belong to it.
func (m Model) Editing() bool {
	return m.editing
}

// currentTask returns a pointer to the task under the cursor, or nil
// when the checklist is empty.
func (m *Model) currentTask() *model.Task {
	if len(m.refs) == 0 {
		return nil
	}
	ref := m.refs[m.cursor]
	return &m.checklist.Sections[ref.section].Tasks[ref.task]
}

// Update handles messages for the checklist screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskSubmittedMsg:
		switch {
		case errors.Is(msg.err, checklist.ErrTaskPending):
			m.status = "Por favor, marque se a tarefa foi realizada ou não realizada."
			m.statusStyle = theme.WarningStyle
		case errors.Is(msg.err, checklist.ErrObservationRequired):
			m.status = "Por favor, adicione uma observação para as tarefas não realizadas."
			m.statusStyle = theme.WarningStyle
		case msg.err != nil:
			m.status = fmt.Sprintf("Erro ao enviar tarefa: %v", msg.err)
			m.statusStyle = theme.ErrorStyle
		default:
			m.status = fmt.Sprintf("Tarefa %q enviada com sucesso!", msg.description)
			m.statusStyle = theme.SuccessStyle
		}
		return m, nil

	case finalizeErrMsg:
		m.status = fmt.Sprintf("Erro ao finalizar checklist: %v", msg.err)
		m.statusStyle = theme.ErrorStyle
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.editing {
			m, cmd = m.updateEditing(msg)
		} else {
			m, cmd = m.updateBrowsing(msg)
		}
		m.syncViewport()
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateBrowsing handles keys while navigating the task list.
func (m Model) updateBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	task := m.currentTask()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.refs)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Realized):
		if task != nil {
			task.MarkRealized()
		}

	case key.Matches(msg, m.keys.NotRealized):
		if task != nil {
			task.MarkNotRealized()
		}

	case key.Matches(msg, m.keys.Pending):
		if task != nil {
			task.ResetCompletion()
		}

	case key.Matches(msg, m.keys.Observation):
		if task != nil {
			m.editing = true
			m.input.SetValue(task.Observation)
			return m, m.input.Focus()
		}

	case key.Matches(msg, m.keys.SubmitTask):
		if task != nil {
			return m, m.submitTask(*task)
		}

	case key.Matches(msg, m.keys.Finalize):
		return m, m.finalize()

	case key.Matches(msg, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }
	}

	return m, nil
}

// updateEditing handles keys while the observation input has focus.
func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if task := m.currentTask(); task != nil {
			task.SetObservation(m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitTask validates and logs a single task off the UI loop.
func (m Model) submitTask(task model.Task) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		err := m.recorder.Submit(context.Background(), task, session, time.Now())
		return taskSubmittedMsg{description: task.Description, err: err}
	}
}

// finalize logs every task regardless of state and produces the
// summary.
func (m Model) finalize() tea.Cmd {
	cl := m.checklist
	session := m.session
	return func() tea.Msg {
		summary, err := m.recorder.FinalizeAll(context.Background(), cl, session, time.Now())
		if err != nil {
			return finalizeErrMsg{err: err}
		}
		return FinalizedMsg{Summary: summary}
	}
}

// View renders the checklist viewport and the bottom line.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderBottom())
}

// syncViewport rebuilds the viewport content and keeps the cursor row
// visible. Called after any mutation that can change the rendering.
func (m *Model) syncViewport() {
	content, cursorLine := m.renderTasks()
	m.viewport.SetContent(content)
	m.scrollTo(cursorLine)
}

// renderTasks builds the scrollable task list and returns it together
// with the line index of the cursor row.
func (m Model) renderTasks() (string, int) {
	var (
		b          strings.Builder
		line       int
		cursorLine int
	)

	for si, section := range m.checklist.Sections {
		if si > 0 {
			b.WriteByte('\n')
			line++
		}
		b.WriteString(theme.SectionStyle.UnsetMarginTop().Render(section.Title))
		b.WriteByte('\n')
		line++

		for ti := range section.Tasks {
			task := &section.Tasks[ti]
			selected := len(m.refs) > 0 && m.refs[m.cursor] == (taskRef{section: si, task: ti})
			if selected {
				cursorLine = line
			}
			b.WriteString(m.renderTask(task, selected))
			b.WriteByte('\n')
			line++
		}
	}

	return b.String(), cursorLine
}

// renderTask renders one task row: state marker, description, and any
// observation.
func (m Model) renderTask(task *model.Task, selected bool) string {
	marker := "[ ]"
	switch task.State {
	case model.StateRealized:
		marker = "[x]"
	case model.StateNotRealized:
		marker = "[!]"
	}

	row := fmt.Sprintf("%s %s - %s",
		theme.StateStyle(task.State).Render(marker),
		task.Description,
		theme.StateStyle(task.State).Render(task.State.Label()),
	)
	if task.Observation != "" {
		row += theme.HelpStyle.Render(fmt.Sprintf("  (%s)", task.Observation))
	}

	if selected {
		return theme.SelectedTaskStyle.Render(row)
	}
	return theme.TaskStyle.Render(row)
}

// renderBottom renders the observation input while editing, otherwise
// the status line.
func (m Model) renderBottom() string {
	if m.editing {
		return m.input.View()
	}
	if m.status != "" {
		return m.statusStyle.Render(m.status)
	}
	return theme.HelpStyle.Render("r/n/p marcar · o observação · s enviar · f finalizar")
}

// scrollTo adjusts the viewport offset so the given line is visible.
func (m *Model) scrollTo(line int) {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	if line < top {
		m.viewport.SetYOffset(line)
	} else if line > bottom {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}
