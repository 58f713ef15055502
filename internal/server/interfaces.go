package server

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving and blocks until SIGINT, SIGTERM or SIGQUIT
	// is received and every server has shut down.
	RunServer()

	// Shutdown gracefully stops the servers.
	Shutdown()
}
