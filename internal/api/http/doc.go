// Package http provides the REST handlers for service discovery and
// tool execution.
package http
