package models

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	// Token is the signed identity token to be sent back in the
	// Authorization header of protected requests.
	Token string `json:"token"`

	// SanitizedUser is the public view of the logged in user.
	SanitizedUser PublicUser `json:"sanitizedUser"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
