package models

import "time"

// IntegrityFault describes an active association that stayed inconsistent
// after a forced refresh. While a fault is set, dependent features must not
// query tenant data.
type IntegrityFault struct {
	Reason     string    `json:"reason"`
	Expected   string    `json:"expected,omitempty"`
	Actual     string    `json:"actual,omitempty"`
	Source     string    `json:"source,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}

// Session is the full in-memory state owned by the session store.
// It is never mutated in place: the store stages a new value and swaps it.
type Session struct {
	Token             string
	User              *User
	Associations      []Association
	ActiveAssociation *Association
	IsLoading         bool
	IntegrityFault    *IntegrityFault
}

// IsAuthenticated is derived from the token and the user; it is never stored.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Clone deep-copies the session.
func (s Session) Clone() Session {
	c := Session{
		Token:             s.Token,
		User:              s.User.Clone(),
		Associations:      CloneAssociations(s.Associations),
		ActiveAssociation: s.ActiveAssociation.Clone(),
		IsLoading:         s.IsLoading,
	}
	if s.IntegrityFault != nil {
		f := *s.IntegrityFault
		c.IntegrityFault = &f
	}
	return c
}

// View projects the session into the read-only shape exposed to readers.
func (s Session) View() SessionView {
	c := s.Clone()
	return SessionView{
		IsAuthenticated:   c.IsAuthenticated(),
		IsLoading:         c.IsLoading,
		User:              c.User,
		Associations:      c.Associations,
		ActiveAssociation: c.ActiveAssociation,
		IntegrityFault:    c.IntegrityFault,
	}
}

// Snapshot projects the persisted subset of the session.
func (s Session) Snapshot() Snapshot {
	c := s.Clone()
	return Snapshot{
		Token:             c.Token,
		User:              c.User,
		Associations:      c.Associations,
		ActiveAssociation: c.ActiveAssociation,
	}
}

// SessionView is a read-only copy of the session handed to dependent
// features and subscribers. Mutating it has no effect on the store.
type SessionView struct {
	IsAuthenticated   bool
	IsLoading         bool
	User              *User
	Associations      []Association
	ActiveAssociation *Association
	IntegrityFault    *IntegrityFault
}

// Snapshot is the persisted projection of a session. It is a cache: the
// backend stays authoritative for associations and the active association.
type Snapshot struct {
	Token             string
	User              *User
	Associations      []Association
	ActiveAssociation *Association
}
