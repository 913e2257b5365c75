package requirement

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thenoobsbr/lib-requirement/requirement/log"
	"github.com/thenoobsbr/lib-requirement/requirement/metrics"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

// RequirementMetrics counts failed checks through a MetricsFactory.
type RequirementMetrics struct {
	factory *metrics.MetricsFactory
}

var (
	requirementMetricsInstance *RequirementMetrics
	requirementMetricsMu       sync.RWMutex
)

// InitRequirementMetrics enables failure counters for every Requirement.
// Call it once during startup after telemetry is initialized; later calls
// are ignored until ResetRequirementMetrics.
func InitRequirementMetrics(factory *metrics.MetricsFactory) {
	requirementMetricsMu.Lock()
	defer requirementMetricsMu.Unlock()

	if factory == nil || requirementMetricsInstance != nil {
		return
	}

	requirementMetricsInstance = &RequirementMetrics{factory: factory}
}

// GetRequirementMetrics returns the singleton, or nil before InitRequirementMetrics.
func GetRequirementMetrics() *RequirementMetrics {
	requirementMetricsMu.RLock()
	defer requirementMetricsMu.RUnlock()

	return requirementMetricsInstance
}

// ResetRequirementMetrics clears the singleton (useful for tests).
func ResetRequirementMetrics() {
	requirementMetricsMu.Lock()
	defer requirementMetricsMu.Unlock()

	requirementMetricsInstance = nil
}

func (rm *RequirementMetrics) recordFailed(ctx context.Context, component, operation, check string) error {
	if rm == nil || rm.factory == nil {
		return nil
	}

	return rm.factory.RecordRequirementFailed(ctx, component, operation, check)
}

func (rm *RequirementMetrics) recordInvalidArgument(ctx context.Context, component, operation, check string) error {
	if rm == nil || rm.factory == nil {
		return nil
	}

	return rm.factory.RecordInvalidArgument(ctx, component, operation, check)
}

func (r *Requirement) recordFailure(check string, custom bool, stack []byte) {
	ctx := r.telemetryContext()

	if err := GetRequirementMetrics().recordFailed(ctx, r.component, r.operation, check); err != nil {
		r.logMetricError(err)
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := r.spanAttributes(check, defaultMessage(check), stack)
	attrs = append(attrs, attribute.Bool(constant.AttrRequirementCustom, custom))

	// Rejected input is an expected outcome; the span status is left alone.
	span.AddEvent(constant.EventRequirementFailed, trace.WithAttributes(attrs...))
}

func (r *Requirement) recordInvalidArgument(err *ArgumentError, stack []byte) {
	ctx := r.telemetryContext()

	if mErr := GetRequirementMetrics().recordInvalidArgument(ctx, r.component, r.operation, err.Check); mErr != nil {
		r.logMetricError(mErr)
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(constant.EventRequirementInvalidArgument,
		trace.WithAttributes(r.spanAttributes(err.Check, err.Error(), stack)...))
	span.RecordError(err)
	span.SetStatus(codes.Error, invalidArgumentStatusMessage(r.component, r.operation))
}

func (r *Requirement) spanAttributes(check, message string, stack []byte) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrRequirementCheck, check),
		attribute.String(constant.AttrRequirementMessage, message),
	}

	if r.field != "" {
		attrs = append(attrs, attribute.String(constant.AttrRequirementField, r.field))
	}

	if r.component != "" {
		attrs = append(attrs, attribute.String(constant.AttrRequirementComponent, r.component))
	}

	if r.operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrRequirementOperation, r.operation))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrRequirementStack, string(stack)))
	}

	return attrs
}

func (r *Requirement) logMetricError(err error) {
	if r.logger == nil {
		return
	}

	r.logger.Log(r.telemetryContext(), log.LevelWarn, "failed to record requirement metric", log.Err(err))
}

func invalidArgumentStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("invalid requirement argument in %s/%s", component, operation)
	case component != "":
		return "invalid requirement argument in " + component
	case operation != "":
		return "invalid requirement argument in " + operation
	default:
		return "invalid requirement argument"
	}
}
