// Package log defines the logging interface used on the requirement failure
// path, plus typed fields and two backends: Discard and GoLogger.
//
// Structured backends (such as the zap package) implement Logger so callers
// can route failure logs to whatever sink their service already uses.
package log
