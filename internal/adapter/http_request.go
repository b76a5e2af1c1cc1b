package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// authorized starts a request carrying the stored token as
// "Authorization: Bearer <token>". Fails with ErrNoToken before login.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(token), nil
}
