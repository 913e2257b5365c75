// Package security detects sensitive subject names so the failure path can
// redact the offending values before they reach logs or spans.
package security
