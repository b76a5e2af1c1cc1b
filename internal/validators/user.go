package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field names accepted by [UserValidator].
const (
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// SignupFields is the field set checked before a user is registered.
var SignupFields = []string{FieldFullName, FieldEmail, FieldPassword}

// LoginFields is the field set checked before credentials are verified.
var LoginFields = []string{FieldEmail, FieldPassword}

// UserValidator checks that signup and login requests carry the required
// fields. Only presence is checked, the format of an email or the strength
// of a password are not.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User and *models.User. Without fields it checks
// [SignupFields].
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = SignupFields
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(user.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			// whitespace is a legal password
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
