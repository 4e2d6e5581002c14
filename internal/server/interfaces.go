package server

import "context"

// Server defines the lifecycle of the status listener.
type Server interface {
	// RunServer serves until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
