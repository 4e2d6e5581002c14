package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-school-link/models"
)

// Struct field names accepted by [SessionValidator.Validate] as field scopes.
const (
	FieldEmail       = "Email"
	FieldPassword    = "Password"
	FieldNewPassword = "NewPassword"
)

var knownFields = map[string]struct{}{
	FieldEmail:       {},
	FieldPassword:    {},
	FieldNewPassword: {},
}

// SessionValidator validates session inputs (credentials and password
// rotations) locally, before any network call. Rules live in the models'
// `validate` struct tags.
type SessionValidator struct {
	validate *validator.Validate
}

func NewSessionValidator() Validator {
	return &SessionValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if _, ok := knownFields[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	switch value := obj.(type) {
	case models.Credentials:
		value.Email = strings.TrimSpace(value.Email)
		return v.validateStruct(ctx, value, fields...)
	case *models.Credentials:
		c := *value
		c.Email = strings.TrimSpace(c.Email)
		return v.validateStruct(ctx, c, fields...)

	case models.PasswordChange:
		return v.validateStruct(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validateStruct(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	// report the first failing rule
	return mapFieldError(validationErrors[0])
}

func mapFieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case FieldEmail:
		if fe.Tag() == "required" {
			return ErrEmptyEmail
		}
		return ErrInvalidEmail
	case FieldPassword:
		return ErrEmptyPassword
	case FieldNewPassword:
		switch fe.Tag() {
		case "required":
			return ErrEmptyPassword
		case "min":
			return ErrPasswordTooShort
		case "max":
			return ErrPasswordTooLong
		}
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalidField, fe.Field(), fe.Tag())
}
