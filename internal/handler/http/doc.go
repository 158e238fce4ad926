// Package http implements the REST transport of the analysis record store.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression, and bearer-token checks on
// the admin routes are handled here before requests are delegated to the
// service layer.
package http
