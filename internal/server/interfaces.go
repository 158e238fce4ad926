package server

// Server is one long-running listener of the record store, or the set of
// them returned by [NewServer].
type Server interface {
	// RunServer serves until Shutdown is called.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests to finish.
	Shutdown()
}

// transport is a named listener, used for start/stop log lines.
type transport struct {
	name string
	Server
}
