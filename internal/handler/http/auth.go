package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(r.Body, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err), "*Handler.signup")
		return
	}

	ctx := r.Context()
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.signup")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", registeredUser.UserID).Msg("user signed up")
	writeJSON(w, r, models.MessageResponse{Message: app.MsgSuccess}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(r.Body, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err), "*Handler.login")
		return
	}

	ctx := r.Context()
	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	writeJSON(w, r, models.LoginResponse{
		Token:         token.SignedString,
		SanitizedUser: foundUser.Sanitize(),
	}, http.StatusOK)
}
