package metrics

import (
	"go.opentelemetry.io/otel/attribute"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

// Labels are the dimensions of every requirement counter.
type Labels struct {
	Component string
	Operation string
	Check     string
}

// attributeSet returns the sanitized label set and the keys that had to be
// truncated to constant.MaxMetricLabelLength.
func (l Labels) attributeSet() (attribute.Set, []string) {
	var truncated []string

	label := func(key, value string) attribute.KeyValue {
		sanitized := constant.SanitizeMetricLabel(value)
		if sanitized != value {
			truncated = append(truncated, key)
		}

		return attribute.String(key, sanitized)
	}

	set := attribute.NewSet(
		label(constant.LabelComponent, l.Component),
		label(constant.LabelOperation, l.Operation),
		label(constant.LabelCheck, l.Check),
	)

	return set, truncated
}
