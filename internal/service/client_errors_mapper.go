// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-school-link/internal/adapter"
	"github.com/MKhiriev/go-school-link/internal/app"
)

// mapAdapterError translates the adapter's transport error into the session
// error taxonomy.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return newAuthError(ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword, err)

	case errors.Is(err, adapter.ErrForbidden):
		return newAuthError(ErrInvalidCredentials, http.StatusForbidden, app.MsgAccessDenied, err)

	case errors.Is(err, adapter.ErrNotFound):
		return newAuthError(ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound, err)

	case errors.Is(err, adapter.ErrUnprocessable):
		return newAuthError(ErrValidation, http.StatusUnprocessableEntity, validationMessage(err), err)

	case errors.Is(err, adapter.ErrBadRequest):
		return newAuthError(ErrValidation, http.StatusBadRequest, validationMessage(err), err)

	case errors.Is(err, adapter.ErrServer):
		return newAuthError(ErrServerFault, http.StatusInternalServerError, app.MsgServerFault, err)

	case errors.Is(err, adapter.ErrUnexpectedStatus), errors.Is(err, adapter.ErrDecode):
		return newAuthError(ErrServerFault, 0, app.MsgServerFault, err)

	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return newAuthError(ErrTimeout, 0, app.MsgTimeout, err)

	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, context.Canceled):
		return newAuthError(ErrNetworkUnreachable, 0, app.MsgNetworkUnreachable, err)
	}

	return newAuthError(ErrServerFault, 0, app.MsgServerFault, err)
}

// validationMessage prefers the server's own explanation.
func validationMessage(err error) string {
	if body := extractBody(err); body != "" {
		return body
	}
	return app.MsgValidationFailed
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}
