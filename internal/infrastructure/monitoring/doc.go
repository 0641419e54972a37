// Package monitoring provides Prometheus metrics for the HTTP surface
// and the propagation engine.
//
// Each Metrics instance carries its own registry, exposed through
// Handler. Engine gauges scrape live counts via callbacks instead of
// requiring explicit updates.
package monitoring
