package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() models.User {
	return models.User{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "engine",
	}
}

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid signup", obj: validSignup()},
		{name: "valid signup pointer", obj: func() *models.User { u := validSignup(); return &u }()},
		{name: "missing full name", obj: models.User{Email: "a@b.c", Password: "p"}, wantErr: ErrEmptyFullName},
		{name: "blank full name", obj: models.User{FullName: "  ", Email: "a@b.c", Password: "p"}, wantErr: ErrEmptyFullName},
		{name: "missing email", obj: models.User{FullName: "A", Password: "p"}, wantErr: ErrEmptyEmail},
		{name: "missing password", obj: models.User{FullName: "A", Email: "a@b.c"}, wantErr: ErrEmptyPassword},
		{name: "whitespace password is present", obj: models.User{FullName: "A", Email: "a@b.c", Password: " "}},
		{name: "login ignores full name", obj: models.User{Email: "a@b.c", Password: "p"}, fields: LoginFields},
		{name: "login missing password", obj: models.User{Email: "a@b.c"}, fields: LoginFields, wantErr: ErrEmptyPassword},
		{name: "unknown field", obj: validSignup(), fields: []string{"nickname"}, wantErr: ErrUnknownField},
		{name: "nil pointer", obj: (*models.User)(nil), wantErr: ErrUnsupportedType},
		{name: "unsupported type", obj: models.Todo{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
