package models

import "time"

// TokenInfo holds the claims the client reads from a bearer token without
// verifying it. The backend remains the only verifier.
type TokenInfo struct {
	// Subject is the "sub" claim.
	Subject string

	// ExpiresAt is the "exp" claim; zero when the token carries none.
	ExpiresAt time.Time
}

// Expired reports whether the token expiry is known and lies before now.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !t.ExpiresAt.After(now)
}
