package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-school-link/models"
)

type pickerModel struct {
	items  []models.Association
	cursor int
	errMsg string

	chosen string
	quit   bool
}

func newPickerModel(list []models.Association, currentID string) *pickerModel {
	m := &pickerModel{items: models.CloneAssociations(list)}
	for i, a := range m.items {
		if a.ID == currentID {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMatches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case keyMatches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.errMsg = ""
	case keyMatches(keyMsg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.errMsg = ""
	case keyMatches(keyMsg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if !item.IsActive() {
			m.errMsg = "this association is inactive"
			return m, nil
		}
		m.chosen = item.ID
		return m, tea.Quit
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("no associations")
	}
	for i, a := range m.items {
		line := a.Label()
		if !a.IsActive() {
			line = inactiveStyle.Render(line)
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return renderPage("Choose institution", b.String(), m.errMsg, "↑/↓: move  enter: select")
}
