// Package zap adapts go.uber.org/zap to the requirement log.Logger interface.
//
// Use New to build an environment-profiled logger, or FromZap to wrap a
// *zap.Logger the service already owns. Either can be handed to
// requirement.WithLogger so failed checks are logged alongside the rest of
// the service's output.
package zap
