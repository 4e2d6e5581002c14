package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/models"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

type loginModel struct {
	ctx   context.Context
	store service.SessionStore

	inputs  [loginFieldCount]textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool
	errMsg  string

	view models.SessionView
	quit bool
}

func newLoginModel(ctx context.Context, store service.SessionStore, email string) *loginModel {
	m := &loginModel{ctx: ctx, store: store, spinner: spinner.New()}

	m.inputs[loginFieldEmail] = textinput.New()
	m.inputs[loginFieldEmail].Placeholder = "email"
	m.inputs[loginFieldEmail].SetValue(email)

	m.inputs[loginFieldPassword] = textinput.New()
	m.inputs[loginFieldPassword].Placeholder = "password"
	m.inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[loginFieldPassword].EchoCharacter = '•'

	if email != "" {
		m.focus = loginFieldPassword
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.inputs[loginFieldPassword].SetValue("")
			m.setFocus(loginFieldPassword)
			return m, nil
		}
		m.view = msg.view
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
		case keyMatches(msg, keys.nextField):
			m.setFocus((m.focus + 1) % loginFieldCount)
			return m, nil
		case keyMatches(msg, keys.prevField):
			m.setFocus((m.focus + loginFieldCount - 1) % loginFieldCount)
			return m, nil
		case keyMatches(msg, keys.enter):
			if m.focus == loginFieldEmail {
				m.setFocus(loginFieldPassword)
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()
	m.busy = true
	m.errMsg = ""

	ctx, store := m.ctx, m.store
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		view, err := store.Login(ctx, email, password)
		return loginDoneMsg{view: view, err: err}
	})
}

func (m *loginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString(m.inputs[loginFieldEmail].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " signing in...")
	}
	return renderPage("Sign in", b.String(), m.errMsg, "tab: next field  enter: sign in")
}
