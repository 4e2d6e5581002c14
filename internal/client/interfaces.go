package client

import (
	"context"

	"github.com/MKhiriev/go-school-link/models"
)

// Prompter collects input interactively. A nil Prompter makes the App
// non-interactive: it reports the next destination instead of asking.
type Prompter interface {
	// Login asks for credentials and signs in through the session store.
	Login(ctx context.Context, email string) (models.SessionView, error)
	// PickAssociation asks the user to choose one association from list.
	PickAssociation(ctx context.Context, list []models.Association, currentID string) (string, error)
	// ChangePassword asks for a new password and rotates it through the
	// session store.
	ChangePassword(ctx context.Context, firstLogin bool) error
}
