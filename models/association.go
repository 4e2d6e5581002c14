package models

import "strings"

// AssociationStatus is the lifecycle status of an [Association].
type AssociationStatus string

const (
	AssociationActive   AssociationStatus = "active"
	AssociationInactive AssociationStatus = "inactive"
)

// Institution is the school owning an association.
type Institution struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
}

// Division is an optional sub-unit (level, course, grade) of an institution.
type Division struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Student is the child an association is bound to for family-scoped roles.
type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Association binds a user to one institution, division and role, and
// optionally to one student. Associations are immutable values fetched from
// the backend; use Clone before handing one out of the session store.
type Association struct {
	ID          string            `json:"id"`
	Institution Institution       `json:"institution"`
	Division    *Division         `json:"division,omitempty"`
	Role        Role              `json:"role"`
	Student     *Student          `json:"student,omitempty"`
	Status      AssociationStatus `json:"status"`
}

// IsActive reports whether the association can be selected.
func (a Association) IsActive() bool {
	return a.Status == AssociationActive
}

// StudentID returns the bound student's id and whether a student is bound.
func (a *Association) StudentID() (string, bool) {
	if a == nil || a.Student == nil {
		return "", false
	}
	return a.Student.ID, true
}

// Clone returns a deep copy of a, or nil when a is nil.
func (a *Association) Clone() *Association {
	if a == nil {
		return nil
	}
	c := *a
	if a.Division != nil {
		d := *a.Division
		c.Division = &d
	}
	if a.Student != nil {
		s := *a.Student
		c.Student = &s
	}
	return &c
}

// CloneAssociations deep-copies list. A nil list stays nil.
func CloneAssociations(list []Association) []Association {
	if list == nil {
		return nil
	}
	out := make([]Association, len(list))
	for i := range list {
		out[i] = *list[i].Clone()
	}
	return out
}

// FindAssociation returns the entry of list with the given id.
func FindAssociation(list []Association, id string) (*Association, bool) {
	for i := range list {
		if list[i].ID == id {
			return &list[i], true
		}
	}
	return nil, false
}

// Label renders the association as a single human-readable line.
func (a Association) Label() string {
	label := a.Institution.Name
	if a.Division != nil && a.Division.Name != "" {
		label += " / " + a.Division.Name
	}
	if a.Role.Name != "" {
		label += " (" + a.Role.Name + ")"
	}
	if a.Student != nil {
		label += ": " + strings.TrimSpace(a.Student.FirstName+" "+a.Student.LastName)
	}
	return label
}
