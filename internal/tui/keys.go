package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextField key.Binding
	prevField key.Binding
	enter     key.Binding
	quit      key.Binding
}

// Form fields receive printable keys, so field navigation is bound to
// non-printable keys only.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
