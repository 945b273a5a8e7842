// Package telemetry groups the operational observability of the icon services.
//
// # Operational Metrics (telemetry/metrics)
//
// Operational metrics capture how the library is used by its transports:
//   - Icon lookups by set and outcome
//   - Default icon picks by set
//   - Export runs by outcome
//
// Metrics are exposed in Prometheus format on the HTTP transport. Traces are
// configured separately by internal/platform/otel.
package telemetry
