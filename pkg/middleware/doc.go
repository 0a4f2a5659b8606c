// Package middleware provides cross-cutting wrappers for form event
// handling: Prometheus metrics and OpenTelemetry tracing.
package middleware
