package server

// Server defines the lifecycle shared by the application server and the
// transports it manages.
//
// RunServer blocks until the server stops and returns the reason it
// stopped, nil after a graceful Shutdown.
type Server interface {
	RunServer() error
	Shutdown()
}
