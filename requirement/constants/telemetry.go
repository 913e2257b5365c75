package constant

import "unicode/utf8"

// TelemetryLibraryName identifies this library as an OTEL instrumentation scope.
const TelemetryLibraryName = "github.com/thenoobsbr/lib-requirement"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixRequirement is the prefix for requirement span event attributes.
const AttrPrefixRequirement = "requirement."

// Span event attribute keys.
const (
	AttrRequirementCheck     = AttrPrefixRequirement + "check"
	AttrRequirementField     = AttrPrefixRequirement + "field"
	AttrRequirementMessage   = AttrPrefixRequirement + "message"
	AttrRequirementComponent = AttrPrefixRequirement + "component"
	AttrRequirementOperation = AttrPrefixRequirement + "operation"
	AttrRequirementCustom    = AttrPrefixRequirement + "custom_failure"
	AttrRequirementStack     = AttrPrefixRequirement + "stack"
)

// Metric names.
const (
	// MetricRequirementFailedTotal counts checks that rejected their input.
	MetricRequirementFailedTotal = "requirement_failed_total"
	// MetricRequirementInvalidArgumentTotal counts checks called with malformed arguments.
	MetricRequirementInvalidArgumentTotal = "requirement_invalid_argument_total"
)

// Metric label keys.
const (
	LabelComponent = "component"
	LabelOperation = "operation"
	LabelCheck     = "check"
)

// Span event names.
const (
	EventRequirementFailed          = "requirement.failed"
	EventRequirementInvalidArgument = "requirement.invalid_argument"
)

// RedactedValue replaces values logged for sensitive fields.
const RedactedValue = "[REDACTED]"

// SanitizeMetricLabel truncates a label value to at most MaxMetricLabelLength
// bytes without splitting a rune.
func SanitizeMetricLabel(value string) string {
	if len(value) <= MaxMetricLabelLength {
		return value
	}

	cut := MaxMetricLabelLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}

	return value[:cut]
}
