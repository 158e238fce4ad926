// Package server runs the record store process: the HTTP API used by the
// mobile app and the admin CLI, the gRPC health endpoint, and the
// background retention workers. All of them start together and stop on
// SIGTERM, SIGINT or SIGQUIT, the workers draining after the listeners close.
package server
