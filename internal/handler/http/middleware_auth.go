package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

const authorizationHeader = "Authorization"

// auth is an HTTP middleware that enforces token authentication.
//
// The token is taken from the "Authorization" header, either raw or after
// the "Bearer " prefix, and verified with [service.AuthService.ParseToken].
// On success the caller's user ID is stored in the request context under
// [utils.UserIDCtxKey] and the request-scoped logger is tagged with it.
//
// Responses on rejection:
//   - 403 "No token provided" when the header is absent or blank.
//   - 401 "Failed to authenticate token" when the header cannot be parsed
//     or the token is expired or invalid.
//   - 500 for any other verification failure.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ExtractToken(r.Header.Get(authorizationHeader))
		if err != nil {
			if errors.Is(err, utils.ErrNoToken) {
				log.Warn().Err(err).Str("func", "*Handler.auth").Send()
				utils.WriteError(w, app.MsgNoTokenProvided, http.StatusForbidden)
				return
			}
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("malformed authorization header")
			utils.WriteError(w, app.MsgFailedToAuthenticateToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token expired")
				utils.WriteError(w, app.MsgFailedToAuthenticateToken, http.StatusUnauthorized)
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Warn().Err(err).Str("func", "*Handler.auth").Msg("invalid token")
				utils.WriteError(w, app.MsgFailedToAuthenticateToken, http.StatusUnauthorized)
			default:
				log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
				utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			}
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.WithUserID(token.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
