// Package requirement provides guard clauses for validating inputs at
// function boundaries.
//
// Every check returns nil when its condition holds and an error when it does
// not. Checks never modify their inputs and give the same answer for the
// same input.
//
// # Obtaining a Requirement
//
//	req := requirement.Default()                       // shared, default failure
//	req := requirement.WithFailure(newInvalidOrderErr)  // instance failure factory
//	req := requirement.New(                            // fully configured
//	    requirement.WithLogger(logger),
//	    requirement.WithComponent("orders"),
//	    requirement.WithOperation("create"),
//	)
//
// A Requirement is immutable and safe for concurrent use. For and
// WithContext return scoped copies. A nil *Requirement behaves like Default.
//
// # Checks
//
//	req.NotNil(v)                    req.IsNil(v)
//	req.IsTrue(b)                    req.IsFalse(b)
//	req.TextEmpty(s)                 req.TextNotEmpty(s)
//	req.CollectionEmpty(c)           req.CollectionNotEmpty(c)
//	req.Matches(s, expr)             req.NotMatches(s, expr)
//	req.IsURL(s, kind)               req.IsEmail(s)
//	req.IsUUID(s)                    req.NoError(err)
//	req.Struct(v)                    req.Satisfies(v, tag)
//
// Generic checks are package functions because Go methods cannot declare
// type parameters. They take the Requirement as the first argument:
//
//	requirement.GreaterOrEqual(req, qty, 1)
//	requirement.LessOrEqual(req, qty, 100)
//	requirement.InRange(req, 3.14, 3.0, 3.1415)
//	requirement.OfType[fmt.Stringer](req, v)
//
// Types without a built-in ordering use the Func variants:
//
//	requirement.GreaterOrEqualFunc(req, due, issued, time.Time.Compare)
//	requirement.InRangeFunc(req, amount, lo, hi, decimal.Decimal.Cmp)
//
// # Failure Precedence
//
// Each check accepts trailing failure factories. When a check fails the
// returned error is resolved in this order:
//
//  1. The first call-site factory returning a non-nil error.
//  2. The Requirement's instance factory.
//  3. A *FailedError whose message is `Requirement "<Check>" was not fulfilled`.
//
// Nil factories, and factories returning nil, are skipped, so a failed
// check never returns nil. Factories are only invoked on failure.
//
//	req := requirement.WithFailure(func() error { return ErrInvalidOrder })
//	err := req.TextNotEmpty(id, func() error { return ErrMissingID }) // ErrMissingID
//	err = req.TextNotEmpty(id)                                         // ErrInvalidOrder
//
// # Argument Errors
//
// A check called with something it cannot evaluate returns an
// *ArgumentError instead of a requirement failure: a collection check given
// untyped nil or a value with no length, OfType given nil, a pattern check
// given a pattern that does not compile, IsURL given an unknown URLKind, or
// Struct given a non-struct. Argument errors wrap ErrInvalidArgument, never
// match ErrRequirementFailed, and bypass failure factories.
//
//	switch {
//	case requirement.IsInvalidArgument(err):
//	    // programming error
//	case err != nil:
//	    // rejected input
//	}
//
// # Observability
//
// Only failures emit telemetry; the success path does no work beyond the
// check itself.
//
//  1. Logs: when a logger is set, failures are logged at the configured
//     level (warn by default) and argument errors at error level.
//  2. Metrics: requirement_failed_total and requirement_invalid_argument_total
//     with component, operation and check labels, once InitRequirementMetrics
//     has been called.
//  3. Tracing: requirement.failed and requirement.invalid_argument events on
//     the context's span. Argument errors also mark the span as failed.
//
// Values in failure details are truncated, and redacted when the field named
// with For looks sensitive (password, token, api_key, ...).
//
// # Configuration
//
// LoadConfig reads REQUIREMENT_* variables plus ENV and GO_ENV; Configure
// applies them. Stack traces are attached to logs and span events only
// outside production mode.
package requirement
