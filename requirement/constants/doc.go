// Package constant holds the telemetry names emitted on the requirement
// failure path.
//
// Keep this package free of runtime behavior beyond label sanitization.
package constant
