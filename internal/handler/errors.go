package handler

import "errors"

// ErrNoTransport means the server config names neither an HTTP nor a gRPC
// address, so there is nothing to handle requests with.
var ErrNoTransport = errors.New("neither HTTP nor gRPC address is configured")
