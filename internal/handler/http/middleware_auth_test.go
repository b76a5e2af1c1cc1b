package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// protected wraps a handler that records the identity it sees.
func protected(h *Handler, seen *string) http.Handler {
	return h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
		wantError  string
	}{
		{
			name:       "no header",
			header:     "",
			wantStatus: http.StatusForbidden,
			wantError:  app.MsgNoTokenProvided,
		},
		{
			name:       "blank header",
			header:     "   ",
			wantStatus: http.StatusForbidden,
			wantError:  app.MsgNoTokenProvided,
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  app.MsgFailedToAuthenticateToken,
		},
		{
			name:       "expired token",
			header:     bearerHeader,
			parseErr:   fmt.Errorf("%w: exp", service.ErrTokenIsExpired),
			wantStatus: http.StatusUnauthorized,
			wantError:  app.MsgFailedToAuthenticateToken,
		},
		{
			name:       "tampered token",
			header:     bearerHeader,
			parseErr:   fmt.Errorf("%w: signature", service.ErrTokenIsExpiredOrInvalid),
			wantStatus: http.StatusUnauthorized,
			wantError:  app.MsgFailedToAuthenticateToken,
		},
		{
			name:       "unexpected failure",
			header:     bearerHeader,
			parseErr:   errors.New("key store unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseErr != nil {
				m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, tt.parseErr)
			}

			var seen string
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rec := serve(t, protected(h, &seen), http.MethodGet, "/api/todos", "", headers)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
			assert.Empty(t, seen, "next handler must not run")
		})
	}
}

func TestAuth_AcceptsRawAndBearerToken(t *testing.T) {
	for _, header := range []string{bearerHeader, testToken} {
		t.Run(header, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()

			var seen string
			rec := serve(t, protected(h, &seen), http.MethodGet, "/api/todos", "", map[string]string{"Authorization": header})

			require.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, testUserID, seen)
		})
	}
}
