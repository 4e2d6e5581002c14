package models

// Credentials is the input of a login attempt.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the decoded backend answer to a successful login.
//
// Associations and ActiveAssociation are optional: the backend may embed them
// to save a round trip. AssociationsIncluded distinguishes "not sent" from
// "sent and empty".
type LoginResult struct {
	Token                string
	User                 User
	Associations         []Association
	AssociationsIncluded bool
	ActiveAssociation    *Association
}

// PasswordChange is the input of a password rotation.
type PasswordChange struct {
	NewPassword  string `json:"newPassword" validate:"required,min=8,max=128"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// PasswordChangeResult is the backend answer to a password rotation.
type PasswordChangeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
