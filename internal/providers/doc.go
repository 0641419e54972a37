// Package providers implements the service provider system.
//
// Providers expose capabilities through a standardized tool-based
// interface: Definition returns service metadata and tool definitions,
// Execute runs a tool with parameters and context. Tool IDs are
// namespaced by service ("uncertainty.add"), which the registry uses
// for routing.
package providers
