// Package middleware provides HTTP middleware: CORS, per-IP and global
// rate limiting, and request identifiers.
package middleware
