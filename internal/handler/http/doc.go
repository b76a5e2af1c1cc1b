// Package http implements the REST transport of the todo server.
//
// It wires the chi router, the identity middleware and the request
// handlers for signup, login and the todo collection. Request tracing,
// access logging, CORS and response compression are applied here before
// requests reach the service layer.
package http
