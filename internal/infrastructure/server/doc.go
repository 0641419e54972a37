// Package server wires configuration, logging, metrics, middleware, and
// the service registry into a runnable HTTP server.
package server
