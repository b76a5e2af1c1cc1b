package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can use the full resty API
// while the construction defaults live in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client pointed at baseURL.
// Every request carries "Accept: application/json" and is bounded by
// timeout when timeout is positive.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
