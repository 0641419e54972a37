// Package types defines the service, tool and result shapes shared between
// providers, the provider registry and the HTTP surface.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
package types
