package requirement

import (
	"context"

	"github.com/thenoobsbr/lib-requirement/requirement/log"
)

// Requirement evaluates checks and builds the failure returned when one is
// not fulfilled. It is immutable once built and safe for concurrent use;
// derivation methods return copies. A nil *Requirement behaves like Default().
type Requirement struct {
	orElse    FailureFactory
	logger    log.Logger
	ctx       context.Context
	component string
	operation string
	field     string
}

var defaultRequirement = &Requirement{}

// Default returns the shared Requirement that fails with *FailedError.
//
//	if err := requirement.Default().NotNil(order); err != nil {
//		return err
//	}
func Default() *Requirement {
	return defaultRequirement
}

// WithFailure returns a Requirement whose failed checks return the error
// built by factory, unless the call itself supplies a factory.
//
//	req := requirement.WithFailure(func() error { return ErrInvalidOrder })
//	if err := req.TextNotEmpty(order.ID); err != nil {
//		return err // ErrInvalidOrder
//	}
func WithFailure(factory FailureFactory) *Requirement {
	return &Requirement{orElse: factory}
}

// Option configures a Requirement built with New.
type Option func(*Requirement)

// WithFailureFactory sets the instance failure factory.
func WithFailureFactory(factory FailureFactory) Option {
	return func(r *Requirement) {
		r.orElse = factory
	}
}

// WithLogger logs failed checks through logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Requirement) {
		r.logger = logger
	}
}

// WithComponent labels failure telemetry with a component name.
func WithComponent(component string) Option {
	return func(r *Requirement) {
		r.component = component
	}
}

// WithOperation labels failure telemetry with an operation name.
func WithOperation(operation string) Option {
	return func(r *Requirement) {
		r.operation = operation
	}
}

// WithContext sets the context used to correlate failure logs, metrics and
// span events.
func WithContext(ctx context.Context) Option {
	return func(r *Requirement) {
		r.ctx = ctx
	}
}

// New builds a Requirement from options.
//
//	req := requirement.New(
//		requirement.WithLogger(logger),
//		requirement.WithComponent("billing"),
//		requirement.WithOperation("charge"),
//	)
func New(opts ...Option) *Requirement {
	r := &Requirement{}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// For returns a copy that names the subject being checked. The name is
// attached to failures and telemetry, and values are redacted when the
// name looks sensitive ("password", "apiKey", ...).
func (r *Requirement) For(field string) *Requirement {
	c := r.clone()
	c.field = field

	return c
}

// WithContext returns a copy bound to ctx.
func (r *Requirement) WithContext(ctx context.Context) *Requirement {
	c := r.clone()
	c.ctx = ctx

	return c
}

// Field returns the subject name set with For.
func (r *Requirement) Field() string {
	return r.resolve().field
}

func (r *Requirement) clone() *Requirement {
	c := *r.resolve()

	return &c
}

func (r *Requirement) resolve() *Requirement {
	if r == nil {
		return defaultRequirement
	}

	return r
}

func (r *Requirement) telemetryContext() context.Context {
	if r.ctx == nil {
		return context.Background()
	}

	return r.ctx
}
