package requirement

import (
	"errors"
	"fmt"
)

var (
	// ErrRequirementFailed is the sentinel wrapped by every default requirement failure.
	ErrRequirementFailed = errors.New("requirement failed")

	// ErrInvalidArgument is the sentinel for checks called with arguments they
	// cannot evaluate. It never matches ErrRequirementFailed.
	ErrInvalidArgument = errors.New("invalid requirement argument")
)

// FailureFactory builds the error returned when a check is not fulfilled.
// It is only invoked on the failure path.
type FailureFactory func() error

// FailedError is the default error returned by a check that was not fulfilled.
type FailedError struct {
	// Check is the name of the check, e.g. "IsTrue".
	Check string
	// Field is the subject name set with Requirement.For, if any.
	Field string
	// Message is the text returned by Error.
	Message string
	// Details holds one "key=value" pair per line describing the rejected input.
	// Values of sensitive fields are redacted.
	Details string
}

// Error returns `Requirement "<Check>" was not fulfilled`.
func (e *FailedError) Error() string {
	if e == nil {
		return ErrRequirementFailed.Error()
	}

	return e.Message
}

// Unwrap returns ErrRequirementFailed for errors.Is.
func (e *FailedError) Unwrap() error {
	return ErrRequirementFailed
}

// ArgumentError reports a check invoked with an argument it cannot evaluate,
// such as a nil container or an invalid pattern. It is a programming error,
// not a rejected value, and failure factories are never consulted for it.
type ArgumentError struct {
	Check    string
	Argument string
	Reason   string
	// Err is the underlying cause, if any.
	Err error
}

// Error describes the malformed call.
func (e *ArgumentError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}

	msg := fmt.Sprintf("%s: %q passed to requirement %q: %s", ErrInvalidArgument, e.Argument, e.Check, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrInvalidArgument and the underlying cause.
func (e *ArgumentError) Unwrap() []error {
	if e == nil || e.Err == nil {
		return []error{ErrInvalidArgument}
	}

	return []error{ErrInvalidArgument, e.Err}
}

// IsFailure reports whether err is a requirement failure produced by the
// default factory.
func IsFailure(err error) bool {
	return errors.Is(err, ErrRequirementFailed)
}

// IsInvalidArgument reports whether err signals a malformed check call.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func defaultMessage(check string) string {
	if check == "" {
		return "Requirement was not fulfilled"
	}

	return `Requirement "` + check + `" was not fulfilled`
}

// resolveFailure applies call-site > instance > default precedence. Nil
// factories and factories returning nil are skipped.
func resolveFailure(callSite []FailureFactory, instance FailureFactory, fallback func() *FailedError) error {
	for _, f := range callSite {
		if f == nil {
			continue
		}

		if err := f(); err != nil {
			return err
		}
	}

	if instance != nil {
		if err := instance(); err != nil {
			return err
		}
	}

	return fallback()
}
