// Package logging provides structured logging built on zap.
//
// Production logs are JSON on stdout; development logs use a colored
// console encoder with stacktraces enabled.
package logging
