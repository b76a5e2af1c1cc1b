package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// errorResponse is the status and the public message sent for an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first sentinel matched with
// errors.Is wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrEmailAlreadyInUse, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyInUse}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrTitleRequired, errorResponse{http.StatusBadRequest, app.MsgTitleRequired}},
	{service.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{service.ErrTodoNotFound, errorResponse{http.StatusNotFound, app.MsgTodoNotFound}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgFailedToAuthenticateToken}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgFailedToAuthenticateToken}},
}

var internalServerError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return internalServerError
}
