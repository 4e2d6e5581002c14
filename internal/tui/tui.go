// Package tui provides the interactive prompts of the client: the login
// form, the association picker and the password rotation form. Each prompt
// is a small Bubble Tea program that issues intents to the session store.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	store  service.SessionStore
	logger *logger.Logger
	opts   []tea.ProgramOption
}

func New(store service.SessionStore, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{store: store, logger: logger, opts: opts}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.run").Msg("interactive prompt failed")
	}
	return final, err
}

// Login prompts for credentials until the store accepts them or the user
// quits.
func (t *TUI) Login(ctx context.Context, email string) (models.SessionView, error) {
	final, err := t.run(ctx, newLoginModel(ctx, t.store, email))
	if err != nil {
		return models.SessionView{}, err
	}

	m, ok := final.(*loginModel)
	if !ok {
		return models.SessionView{}, tea.ErrProgramKilled
	}
	if m.quit {
		return models.SessionView{}, ErrUserQuit
	}
	return m.view, nil
}

// PickAssociation lets the user choose one of the active associations in
// list and returns its id.
func (t *TUI) PickAssociation(ctx context.Context, list []models.Association, currentID string) (string, error) {
	final, err := t.run(ctx, newPickerModel(list, currentID))
	if err != nil {
		return "", err
	}

	m, ok := final.(*pickerModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if m.quit || m.chosen == "" {
		return "", ErrUserQuit
	}
	return m.chosen, nil
}

// ChangePassword prompts for a new password and rotates it through the
// store.
func (t *TUI) ChangePassword(ctx context.Context, firstLogin bool) error {
	final, err := t.run(ctx, newPasswordModel(ctx, t.store, firstLogin))
	if err != nil {
		return err
	}

	m, ok := final.(*passwordModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if m.quit {
		return ErrUserQuit
	}
	return nil
}
