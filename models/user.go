package models

// User is the authenticated identity held by the session.
// It is replaced wholesale on login; only FirstLoginPending is ever mutated in place.
type User struct {
	// ID is the backend identifier of the user.
	ID string `json:"id"`

	// DisplayName is the human-readable name shown in the UI.
	DisplayName string `json:"display_name"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Role is the user's global role. Tenant-scoped decisions use the
	// active association's role instead.
	Role Role `json:"role"`

	// FirstLoginPending is true while the user still has to rotate the
	// initial password issued by the institution.
	FirstLoginPending bool `json:"first_login_pending"`
}

// Clone returns a copy of u, or nil when u is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
