package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-school-link/internal/service"
)

const (
	passwordFieldNew = iota
	passwordFieldConfirm
	passwordFieldCount
)

type passwordModel struct {
	ctx        context.Context
	store      service.SessionStore
	firstLogin bool

	inputs  [passwordFieldCount]textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool
	errMsg  string

	done bool
	quit bool
}

func newPasswordModel(ctx context.Context, store service.SessionStore, firstLogin bool) *passwordModel {
	m := &passwordModel{ctx: ctx, store: store, firstLogin: firstLogin, spinner: spinner.New()}
	for i, placeholder := range []string{"new password", "repeat new password"} {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = placeholder
		m.inputs[i].EchoMode = textinput.EchoPassword
		m.inputs[i].EchoCharacter = '•'
	}
	m.inputs[passwordFieldNew].Focus()
	return m
}

func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.reset()
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if keyMatches(msg, keys.quit) {
			m.quit = true
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch {
		case keyMatches(msg, keys.nextField), keyMatches(msg, keys.prevField):
			m.setFocus(1 - m.focus)
			return m, nil
		case keyMatches(msg, keys.enter):
			if m.focus == passwordFieldNew {
				m.setFocus(passwordFieldConfirm)
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *passwordModel) submit() tea.Cmd {
	password := m.inputs[passwordFieldNew].Value()
	if password != m.inputs[passwordFieldConfirm].Value() {
		m.errMsg = "passwords do not match"
		m.reset()
		return nil
	}

	m.busy = true
	m.errMsg = ""
	ctx, store := m.ctx, m.store
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return passwordDoneMsg{err: store.ChangePassword(ctx, password)}
	})
}

func (m *passwordModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(passwordFieldNew)
}

func (m *passwordModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *passwordModel) View() string {
	var b strings.Builder
	if m.firstLogin {
		b.WriteString("You must change your password before continuing.\n\n")
	}
	b.WriteString(m.inputs[passwordFieldNew].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[passwordFieldConfirm].View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " saving...")
	}
	return renderPage("Change password", b.String(), m.errMsg, "tab: next field  enter: save")
}
