// Package service provides the provider registry for the uncertainty service.
//
// The registry maintains a catalog of tool providers and routes tool
// execution by the "service." prefix of the tool ID.
//
// Components:
//   - Registry: Central provider catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(uncertaintyProvider)
//	result, err := registry.Execute(ctx, "uncertainty.create", params, nil)
package service
