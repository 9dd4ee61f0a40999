package server

import "context"

// Server defines the lifecycle of the application server.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then shuts
	// down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight work
	// until ctx is done.
	Shutdown(ctx context.Context)
}

// Drainer is satisfied by services that finish background work before
// the process exits.
type Drainer interface {
	Wait(ctx context.Context) error
}

// BackgroundRunner runs the background workers until ctx is done.
type BackgroundRunner interface {
	Run(ctx context.Context) error
}
