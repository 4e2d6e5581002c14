// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-school-link/internal/app"
	"github.com/MKhiriev/go-school-link/internal/service"
)

// humanizeError turns a session error into the line shown under a form.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}

	switch {
	case errors.Is(err, service.ErrNetworkUnreachable):
		return app.MsgNetworkUnreachable
	case errors.Is(err, service.ErrTimeout):
		return app.MsgTimeout
	}
	return err.Error()
}
