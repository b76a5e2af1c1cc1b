// Package server runs the transports of the todo API: the chi based HTTP
// server and, when an address is configured, the gRPC health server.
//
// [Server.RunServer] blocks until a termination signal arrives or a
// transport fails, then shuts every transport down gracefully.
package server
