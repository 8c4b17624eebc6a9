package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Task state
	Realized    key.Binding
	NotRealized key.Binding
	Pending     key.Binding

	// Observation editing
	Observation key.Binding

	// Submission
	SubmitTask key.Binding
	Finalize   key.Binding

	// Session
	Logout key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Realized: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "realizado"),
		),
		NotRealized: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "não realizado"),
		),
		Pending: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pendente"),
		),
		Observation: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "observação"),
		),
		SubmitTask: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "enviar tarefa"),
		),
		Finalize: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finalizar checklist"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "sair da sessão"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "voltar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact
// help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Realized, k.NotRealized,
		k.SubmitTask, k.Finalize, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the
// expanded help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Back, k.Quit},
		{k.Realized, k.NotRealized, k.Pending, k.Observation},
		{k.SubmitTask, k.Finalize, k.Logout, k.Help},
	}
}
