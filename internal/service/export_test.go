package service

import "time"

// SetClock replaces the clock of a store built by NewSessionStore.
func SetClock(s SessionStore, now func() time.Time) {
	s.(*sessionStore).now = now
}
