// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Remote Session API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures by mapHTTPError and mapTransportError so that callers
// can use [errors.Is] for transport-agnostic error handling. Loosely typed
// wire fields (numeric ids, several encodings of the first-login flag) are
// normalised here, once, and never reach the service layer.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-school-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Remote
// Session API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login posts the credentials and decodes the session payload. It does
	// not store the returned token; the session store decides whether the
	// result is still wanted.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	// GetAssociations lists every association of the authenticated user.
	GetAssociations(ctx context.Context) ([]models.Association, error)

	// GetActiveAssociation performs the authoritative, uncached lookup of the
	// active association. A nil association with a nil error means the
	// backend has none designated.
	GetActiveAssociation(ctx context.Context) (*models.Association, error)

	// ChangePassword rotates the user's password.
	ChangePassword(ctx context.Context, change models.PasswordChange) (models.PasswordChangeResult, error)
}
