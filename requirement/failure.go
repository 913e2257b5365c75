package requirement

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/trace"

	"github.com/thenoobsbr/lib-requirement/requirement/log"
	"github.com/thenoobsbr/lib-requirement/requirement/security"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

const maxValueLength = 200

// Detail keys whose values describe the check rather than the subject, so
// they are never redacted.
var structuralKeys = map[string]bool{
	"pattern":       true,
	"count":         true,
	"kind":          true,
	"expected_type": true,
	"actual_type":   true,
	"error_type":    true,
	"tag":           true,
	"failed_tag":    true,
	"invalid_field": true,
	"param":         true,
}

// fail resolves the failure for check through call-site > instance > default
// precedence and reports it. kv holds alternating detail keys and values.
func (r *Requirement) fail(check string, orElse []FailureFactory, kv ...any) error {
	r = r.resolve()

	details := formatKeyValueLines(r.withContextPairs(check, kv))

	err := resolveFailure(orElse, r.orElse, func() *FailedError {
		return &FailedError{
			Check:   check,
			Field:   r.field,
			Message: defaultMessage(check),
			Details: details,
		}
	})

	var failed *FailedError

	custom := !errors.As(err, &failed)

	level := loadPolicy().failureLevel
	stack := r.captureStack(level)

	r.logFailure(level, "REQUIREMENT FAILED: "+defaultMessage(check), check, details, stack,
		log.Bool("custom_failure", custom))
	r.recordFailure(check, custom, stack)

	return err
}

// invalid builds and reports an *ArgumentError. Factories are not consulted.
func (r *Requirement) invalid(check, argument, reason string, cause error) error {
	r = r.resolve()

	err := &ArgumentError{
		Check:    check,
		Argument: argument,
		Reason:   reason,
		Err:      cause,
	}

	stack := r.captureStack(log.LevelError)

	details := formatKeyValueLines(r.withContextPairs(check, nil))
	r.logFailure(log.LevelError, "REQUIREMENT MISUSED: "+err.Error(), check, details, stack)
	r.recordInvalidArgument(err, stack)

	return err
}

// captureStack returns the current stack when the stack policy allows it and
// something will report it: a logger enabled at level or a recording span.
func (r *Requirement) captureStack(level log.Level) []byte {
	if !shouldIncludeStack() {
		return nil
	}

	logged := r.logger != nil && r.logger.Enabled(level)
	if !logged && !trace.SpanFromContext(r.telemetryContext()).IsRecording() {
		return nil
	}

	return debug.Stack()
}

func (r *Requirement) logFailure(level log.Level, message, check, details string, stack []byte, fields ...log.Field) {
	if r.logger == nil || !r.logger.Enabled(level) {
		return
	}

	fields = append(fields, log.String("check", check))
	if r.field != "" {
		fields = append(fields, log.String("field", r.field))
	}

	r.logger.Log(r.telemetryContext(), level, formatLogMessage(message, details, stack), fields...)
}

// contextPairsCapacity is the capacity for the fixed pairs (check, field, component, operation).
const contextPairsCapacity = 8

func (r *Requirement) withContextPairs(check string, kv []any) []any {
	pairs := make([]any, 0, len(kv)+contextPairsCapacity)
	pairs = append(pairs, "check", check)

	if r.field != "" {
		pairs = append(pairs, "field", r.field)
	}

	if r.component != "" {
		pairs = append(pairs, "component", r.component)
	}

	if r.operation != "" {
		pairs = append(pairs, "operation", r.operation)
	}

	sensitive := security.IsSensitiveField(r.field)

	for i := 0; i < len(kv); i += 2 {
		key := kv[i]

		var value any = "MISSING_VALUE"
		if i+1 < len(kv) {
			value = kv[i+1]
		}

		if sensitive && !structuralKeys[fmt.Sprint(key)] {
			value = constant.RedactedValue
		}

		pairs = append(pairs, key, value)
	}

	return pairs
}

// truncateValue keeps logged values bounded.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	cut := maxValueLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "... (truncated " + strconv.Itoa(len(s)-cut) + " chars)"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(kv[i+1]))
	}

	return sb.String()
}

func formatLogMessage(msg, details string, stack []byte) string {
	var sb strings.Builder

	sb.WriteString(msg)

	if details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.Write(stack)
	}

	return sb.String()
}
