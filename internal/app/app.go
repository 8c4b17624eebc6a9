// Package app holds the root Bubble Tea model: view routing between
// the login surface, the checklist, and the finalize summary.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paul0Junior/checklist-eng/internal/checklist"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/internal/store"
	"github.com/Paul0Junior/checklist-eng/internal/ui"
	"github.com/Paul0Junior/checklist-eng/internal/ui/checkform"
	helpview "github.com/Paul0Junior/checklist-eng/internal/ui/help"
	"github.com/Paul0Junior/checklist-eng/internal/ui/login"
	"github.com/Paul0Junior/checklist-eng/internal/ui/summary"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewChecklist
	ViewSummary
	ViewHelp
)

// checklistBuiltMsg carries a freshly built checklist to the UI.
type checklistBuiltMsg struct {
	checklist model.Checklist
}

// fatalErrMsg reports an unrecoverable storage failure.
type fatalErrMsg struct {
	err error
}

// Model is the root Bubble Tea model. The session field is the single
// authority on who is logged in: the login surface is shown until it
// is authenticated, and the checklist is rebuilt fresh from the
// catalog every time it is (re-)entered.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *KeyMap
	logger       *slog.Logger
	title        string

	session model.Session

	builder  *checklist.Builder
	recorder *checklist.Recorder

	loginView   login.Model
	checkView   checkform.Model
	summaryView summary.Model
	helpView    helpview.Model

	ready bool
}

// New creates the root application model over the given store.
func New(s *store.SQLiteStore, cfg *model.AppConfig, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	km := DefaultKeyMap()
	recorder := checklist.NewRecorder(s)

	return Model{
		currentView: ViewLogin,
		keys:        km,
		logger:      logger,
		title:       cfg.Title,
		session:     model.AnonymousSession(),
		builder:     checklist.NewBuilder(s, cfg.Title, logger),
		recorder:    recorder,
		loginView:   login.New(s, 80, 24),
		checkView:   checkform.New(recorder, km, 80, 24),
		summaryView: summary.New(80, 24),
		helpView:    helpview.New(km, 80, 24),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.loginView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(msg.Width, contentHeight)
		m.checkView.SetSize(msg.Width, contentHeight)
		m.summaryView.SetSize(msg.Width, contentHeight)
		m.helpView.SetSize(msg.Width, contentHeight)
		// Forward to the active view so huh forms can lay out.
		return m.updateActiveView(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentView == ViewHelp {
			// Any key dismisses the help overlay.
			m.currentView = m.previousView
			return m, nil
		}
		if m.currentView == ViewChecklist && !m.checkView.Editing() {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			if key.Matches(msg, m.keys.Help) {
				m.previousView = m.currentView
				m.currentView = ViewHelp
				return m, nil
			}
		}
		return m.updateActiveView(msg)

	case login.LoggedInMsg:
		m.session = msg.Session
		m.logger.Info("user logged in", "username", m.session.Username)
		return m, m.buildChecklist()

	case checklistBuiltMsg:
		m.checkView.SetChecklist(msg.checklist, m.session)
		m.currentView = ViewChecklist
		return m, nil

	case checkform.FinalizedMsg:
		m.summaryView.SetSummary(msg.Summary)
		m.currentView = ViewSummary
		return m, nil

	case summary.DismissedMsg:
		// Back to a fresh checklist built from the catalog.
		return m, m.buildChecklist()

	case checkform.LogoutMsg:
		m.logger.Info("user logged out", "username", m.session.Username)
		m.session = model.AnonymousSession()
		m.currentView = ViewLogin
		return m, m.loginView.Start()

	case fatalErrMsg:
		// Storage unavailable; nothing to recover.
		m.logger.Error("fatal storage error", "error", msg.err)
		return m, tea.Quit
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to whichever view is active.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewChecklist:
		m.checkView, cmd = m.checkView.Update(msg)
	case ViewSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}
	return m, cmd
}

// buildChecklist constructs a fresh checklist from the reference
// catalog off the UI loop.
func (m Model) buildChecklist() tea.Cmd {
	return func() tea.Msg {
		cl, err := m.builder.Build(context.Background())
		if err != nil {
			return fatalErrMsg{err: err}
		}
		return checklistBuiltMsg{checklist: cl}
	}
}

// View renders the full frame: header, active view, status bar.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}

	header := m.layout.RenderHeader(m.title, m.sessionLabel())
	statusBar := m.layout.RenderStatusBar(m.statusHints())

	var content string
	switch m.currentView {
	case ViewLogin:
		content = m.loginView.View()
	case ViewChecklist:
		content = m.checkView.View()
	case ViewSummary:
		content = m.summaryView.View()
	case ViewHelp:
		content = m.helpView.View()
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// sessionLabel describes the session for the header's right side.
func (m Model) sessionLabel() string {
	if !m.session.Authenticated {
		return "não autenticado"
	}
	return fmt.Sprintf("Usuário: %s", m.session.Username)
}

// statusHints returns the keyboard hints for the current view.
func (m Model) statusHints() string {
	switch m.currentView {
	case ViewChecklist:
		return "r/n/p marcar · o observação · s enviar · f finalizar · ctrl+l sair da sessão · q sair"
	case ViewSummary:
		return "esc voltar"
	case ViewHelp:
		return "qualquer tecla volta"
	default:
		return "tab/enter navegar · ctrl+c sair"
	}
}
