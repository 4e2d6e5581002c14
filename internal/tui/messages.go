package tui

import "github.com/MKhiriev/go-school-link/models"

type loginDoneMsg struct {
	view models.SessionView
	err  error
}

type passwordDoneMsg struct {
	err error
}
