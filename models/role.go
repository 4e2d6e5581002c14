package models

// Role names known to the client.
const (
	RoleCoordinator    = "coordinator"
	RolePrimaryTutor   = "primary-tutor"
	RoleSecondaryTutor = "secondary-tutor"
)

// Role identifies what a user may do inside an institution.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsFamilyScoped reports whether the role represents a student's tutor.
// Family-scoped associations must always be bound to a student.
func (r Role) IsFamilyScoped() bool {
	switch r.Name {
	case RolePrimaryTutor, RoleSecondaryTutor:
		return true
	default:
		return false
	}
}
