// Package metrics records requirement failures as OpenTelemetry counters.
//
// A MetricsFactory creates requirement_failed_total and
// requirement_invalid_argument_total on construction; each increment carries
// component, operation and check labels truncated to a bounded length.
package metrics
