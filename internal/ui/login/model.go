// Package login renders the combined login/registration surface shown
// whenever the session is unauthenticated.
package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paul0Junior/checklist-eng/internal/credential"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/internal/store"
	"github.com/Paul0Junior/checklist-eng/internal/theme"
)

const (
	modeLogin    = "login"
	modeRegister = "register"
)

// LoggedInMsg is dispatched when authentication succeeds.
type LoggedInMsg struct {
	Session model.Session
}

// registeredMsg is handled internally: registration succeeded and the
// form returns to login mode.
type registeredMsg struct {
	username string
}

// authErrMsg carries a recoverable login/registration failure.
type authErrMsg struct {
	message string
}

// Credentials is the slice of the store the login screen needs.
type Credentials interface {
	RegisterUser(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	mode     string
	username string
	password string
}

// Model is the Bubble Tea model for the login/registration form.
type Model struct {
	form         *huh.Form
	fb           *formBindings
	creds        Credentials
	errorMessage string
	infoMessage  string
	width        int
	height       int
}

// New creates a new login model over the given credential store. The
// username is prefilled with the last remembered login when available.
func New(creds Credentials, width, height int) Model {
	m := Model{
		fb: &formBindings{
			mode:     modeLogin,
			username: credential.LastUsername(),
		},
		creds:  creds,
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init returns the initial command for the login form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Start resets the form for a fresh login after logout.
func (m *Model) Start() tea.Cmd {
	m.fb.mode = modeLogin
	m.fb.password = ""
	m.errorMessage = ""
	m.infoMessage = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the login form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authErrMsg:
		m.errorMessage = msg.message
		m.infoMessage = ""
		m.fb.password = ""
		m.form = m.buildForm()
		return m, m.form.Init()

	case registeredMsg:
		m.errorMessage = ""
		m.infoMessage = "Usuário registrado com sucesso! Agora você pode fazer login."
		m.fb.mode = modeLogin
		m.fb.username = msg.username
		m.fb.password = ""
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		// Nothing to go back to; restart the form.
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	return m, cmd
}

// View renders the login form with any pending messages.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	var parts []string
	if m.errorMessage != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, theme.SuccessStyle.Render(m.infoMessage))
	}
	parts = append(parts, m.form.View())

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(strings.Join(parts, "\n\n"))
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Acesso").
				Options(
					huh.NewOption("Entrar", modeLogin),
					huh.NewOption("Registrar", modeRegister),
				).
				Value(&m.fb.mode),
			huh.NewInput().
				Title("Usuário").
				Value(&m.fb.username).
				Validate(requiredField("Usuário")),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(requiredField("Senha")),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// handleSubmit runs the selected credential operation off the UI loop.
func (m Model) handleSubmit() tea.Cmd {
	mode := m.fb.mode
	username := strings.TrimSpace(m.fb.username)
	password := m.fb.password

	return func() tea.Msg {
		ctx := context.Background()

		if mode == modeRegister {
			err := m.creds.RegisterUser(ctx, username, password)
			switch {
			case errors.Is(err, store.ErrUsernameTaken):
				return authErrMsg{message: "Usuário já existe. Tente outro nome de usuário."}
			case err != nil:
				return authErrMsg{message: fmt.Sprintf("Erro ao registrar: %v", err)}
			}
			return registeredMsg{username: username}
		}

		user, err := m.creds.Authenticate(ctx, username, password)
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			return authErrMsg{message: "Usuário ou senha incorretos."}
		case err != nil:
			return authErrMsg{message: fmt.Sprintf("Erro ao entrar: %v", err)}
		}

		// Best effort; a missing keyring backend is not a problem.
		_ = credential.RememberUsername(user.Username)

		return LoggedInMsg{Session: model.NewSession(user.Username)}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 6
	if h < 10 {
		h = 10
	}
	return h
}

func requiredField(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", fieldName)
		}
		return nil
	}
}
