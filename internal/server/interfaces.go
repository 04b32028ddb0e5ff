package server

import "context"

// Server defines the lifecycle contract of the verify API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is received.
	RunServer()

	// Run serves requests until ctx is done or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
