package metrics

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/thenoobsbr/lib-requirement/requirement/log"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

var (
	// ErrNilMeter indicates that a nil OTEL meter was provided.
	ErrNilMeter = errors.New("metric meter cannot be nil")
	// ErrNilFactory is returned when recording through a nil factory.
	ErrNilFactory = errors.New("metrics factory is nil")
	// ErrUnknownOutcome is returned for an Outcome outside the defined set.
	ErrUnknownOutcome = errors.New("unknown requirement outcome")
)

// Outcome selects the counter a failed check increments.
type Outcome uint8

const (
	// OutcomeFailed counts checks that rejected their input.
	OutcomeFailed Outcome = iota
	// OutcomeInvalidArgument counts checks called with arguments they cannot evaluate.
	OutcomeInvalidArgument

	outcomeCount
)

// Metric describes an instrument.
type Metric struct {
	Name        string
	Description string
	Unit        string
}

var instruments = [outcomeCount]Metric{
	OutcomeFailed: {
		Name:        constant.MetricRequirementFailedTotal,
		Unit:        "1",
		Description: "Total number of requirement checks that were not fulfilled.",
	},
	OutcomeInvalidArgument: {
		Name:        constant.MetricRequirementInvalidArgumentTotal,
		Unit:        "1",
		Description: "Total number of requirement checks called with invalid arguments.",
	},
}

// Instrument returns the instrument description behind o.
func (o Outcome) Instrument() (Metric, bool) {
	if o >= outcomeCount {
		return Metric{}, false
	}

	return instruments[o], true
}

// String returns the counter name for o.
func (o Outcome) String() string {
	if m, ok := o.Instrument(); ok {
		return m.Name
	}

	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// MetricsFactory owns the requirement counters of one meter.
// It is safe for concurrent use.
type MetricsFactory struct {
	counters [outcomeCount]metric.Int64Counter
	logger   log.Logger
}

// NewMetricsFactory creates every requirement counter on meter. logger
// receives notices about truncated labels and may be nil.
func NewMetricsFactory(meter metric.Meter, logger log.Logger) (*MetricsFactory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	if logger == nil {
		logger = log.Discard
	}

	f := &MetricsFactory{logger: logger}

	for outcome, m := range instruments {
		counter, err := meter.Int64Counter(m.Name, metric.WithDescription(m.Description), metric.WithUnit(m.Unit))
		if err != nil {
			return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
		}

		f.counters[outcome] = counter
	}

	return f, nil
}

// NewNopFactory returns a MetricsFactory backed by OpenTelemetry's no-op meter.
func NewNopFactory() *MetricsFactory {
	f, _ := NewMetricsFactory(noop.NewMeterProvider().Meter("nop"), log.Discard)

	return f
}

// Record increments the counter for outcome by one.
func (f *MetricsFactory) Record(ctx context.Context, outcome Outcome, labels Labels) error {
	if f == nil {
		return ErrNilFactory
	}

	if outcome >= outcomeCount {
		return fmt.Errorf("%w: %d", ErrUnknownOutcome, uint8(outcome))
	}

	set, truncated := labels.attributeSet()
	if len(truncated) > 0 && f.logger.Enabled(log.LevelDebug) {
		f.logger.Log(ctx, log.LevelDebug, "requirement metric labels truncated",
			log.String("metric_name", outcome.String()),
			log.Any("labels", truncated),
		)
	}

	f.counters[outcome].Add(ctx, 1, metric.WithAttributeSet(set))

	return nil
}

// RecordRequirementFailed increments requirement_failed_total.
func (f *MetricsFactory) RecordRequirementFailed(ctx context.Context, component, operation, check string) error {
	return f.Record(ctx, OutcomeFailed, Labels{Component: component, Operation: operation, Check: check})
}

// RecordInvalidArgument increments requirement_invalid_argument_total.
func (f *MetricsFactory) RecordInvalidArgument(ctx context.Context, component, operation, check string) error {
	return f.Record(ctx, OutcomeInvalidArgument, Labels{Component: component, Operation: operation, Check: check})
}
