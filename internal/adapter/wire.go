package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-school-link/models"
)

// errAmbiguousFlag is returned for boolean fields whose wire value is not a
// recognised representation.
var errAmbiguousFlag = errors.New("ambiguous boolean value")

// flexBool decodes the boolean encodings the backend has been seen to send:
// true/false, 0/1 and their string forms. null and an absent field leave it
// unset. Anything else is rejected rather than guessed.
type flexBool struct {
	set   bool
	value bool
}

func (b *flexBool) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*b = flexBool{}
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.ToLower(strings.TrimSpace(unquoted))
	}

	switch raw {
	case "true", "1":
		*b = flexBool{set: true, value: true}
	case "false", "0":
		*b = flexBool{set: true, value: false}
	default:
		return fmt.Errorf("%w: %s", errAmbiguousFlag, string(data))
	}
	return nil
}

// flexID accepts identifiers sent either as JSON strings or as numbers.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid identifier %s", string(data))
	}
	*id = flexID(n.String())
	return nil
}

type wireRole struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

func (r wireRole) model() models.Role {
	return models.Role{ID: string(r.ID), Name: strings.ToLower(strings.TrimSpace(r.Name))}
}

type wireUser struct {
	ID                flexID   `json:"id"`
	DisplayName       string   `json:"displayName"`
	Email             string   `json:"email"`
	Role              wireRole `json:"role"`
	FirstLoginPending flexBool `json:"firstLoginPending"`
	IsFirstLogin      flexBool `json:"isFirstLogin"`
}

// model folds the two first-login fields into one canonical boolean.
// Conflicting values are a decode error.
func (u wireUser) model() (models.User, error) {
	pending := false
	switch {
	case u.FirstLoginPending.set && u.IsFirstLogin.set:
		if u.FirstLoginPending.value != u.IsFirstLogin.value {
			return models.User{}, fmt.Errorf("%w: firstLoginPending and isFirstLogin disagree", errAmbiguousFlag)
		}
		pending = u.FirstLoginPending.value
	case u.FirstLoginPending.set:
		pending = u.FirstLoginPending.value
	case u.IsFirstLogin.set:
		pending = u.IsFirstLogin.value
	}

	return models.User{
		ID:                string(u.ID),
		DisplayName:       u.DisplayName,
		Email:             u.Email,
		Role:              u.Role.model(),
		FirstLoginPending: pending,
	}, nil
}

type wireInstitution struct {
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	LegalName string `json:"legalName"`
}

type wireDivision struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type wireStudent struct {
	ID        flexID `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`
}

type wireAssociation struct {
	ID          flexID          `json:"id"`
	Institution wireInstitution `json:"institution"`
	Division    *wireDivision   `json:"division"`
	Role        wireRole        `json:"role"`
	Student     *wireStudent    `json:"student"`
	Status      string          `json:"status"`
}

func (a wireAssociation) model() (models.Association, error) {
	if a.ID == "" {
		return models.Association{}, errors.New("association without id")
	}

	out := models.Association{
		ID: string(a.ID),
		Institution: models.Institution{
			ID:        string(a.Institution.ID),
			Name:      a.Institution.Name,
			LegalName: a.Institution.LegalName,
		},
		Role: a.Role.model(),
	}

	switch strings.ToLower(strings.TrimSpace(a.Status)) {
	case "", string(models.AssociationActive):
		out.Status = models.AssociationActive
	case string(models.AssociationInactive):
		out.Status = models.AssociationInactive
	default:
		return models.Association{}, fmt.Errorf("association %s: unknown status %q", a.ID, a.Status)
	}

	if a.Division != nil {
		out.Division = &models.Division{ID: string(a.Division.ID), Name: a.Division.Name}
	}
	// A student object without an id binds nothing.
	if a.Student != nil && a.Student.ID != "" {
		out.Student = &models.Student{
			ID:        string(a.Student.ID),
			FirstName: a.Student.FirstName,
			LastName:  a.Student.LastName,
			AvatarURL: a.Student.AvatarURL,
		}
	}

	return out, nil
}

func associationsModel(list []wireAssociation) ([]models.Association, error) {
	out := make([]models.Association, 0, len(list))
	for _, a := range list {
		m, err := a.model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

type wireLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireLoginResponse struct {
	Token             string             `json:"token"`
	User              *wireUser          `json:"user"`
	Associations      *[]wireAssociation `json:"associations"`
	ActiveAssociation *wireAssociation   `json:"activeAssociation"`
}

func (r wireLoginResponse) model(headerToken string) (models.LoginResult, error) {
	token := strings.TrimSpace(r.Token)
	if token == "" {
		token = headerToken
	}
	if token == "" {
		return models.LoginResult{}, errors.New("login response without token")
	}
	if r.User == nil {
		return models.LoginResult{}, errors.New("login response without user")
	}

	user, err := r.User.model()
	if err != nil {
		return models.LoginResult{}, err
	}

	result := models.LoginResult{Token: token, User: user}

	if r.Associations != nil {
		list, err := associationsModel(*r.Associations)
		if err != nil {
			return models.LoginResult{}, err
		}
		result.Associations = list
		result.AssociationsIncluded = true
	}

	if r.ActiveAssociation != nil {
		active, err := r.ActiveAssociation.model()
		if err != nil {
			return models.LoginResult{}, err
		}
		result.ActiveAssociation = &active
	}

	return result, nil
}

type wireChangePasswordRequest struct {
	NewPassword  string `json:"newPassword"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

type wireChangePasswordResponse struct {
	Success flexBool `json:"success"`
	Message string   `json:"message"`
}
