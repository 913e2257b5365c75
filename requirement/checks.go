package requirement

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/thenoobsbr/lib-requirement/requirement/internal/nilcheck"
	"github.com/thenoobsbr/lib-requirement/requirement/internal/pattern"
)

// ErrInvalidPattern is wrapped by the *ArgumentError returned when a pattern
// check is given a pattern that does not compile.
var ErrInvalidPattern = pattern.ErrInvalidPattern

// EmailPattern is the expression IsEmail matches against. RE2's \s is ASCII
// only, so IsEmail also rejects any Unicode whitespace.
const EmailPattern = `^[^@\s]+@[^@\s]+\.[^@\s]+$`

// Check names, as they appear in default failure messages.
const (
	CheckNotNil             = "NotNil"
	CheckIsNil              = "IsNil"
	CheckIsTrue             = "IsTrue"
	CheckIsFalse            = "IsFalse"
	CheckTextEmpty          = "TextEmpty"
	CheckTextNotEmpty       = "TextNotEmpty"
	CheckCollectionEmpty    = "CollectionEmpty"
	CheckCollectionNotEmpty = "CollectionNotEmpty"
	CheckOfType             = "OfType"
	CheckMatches            = "Matches"
	CheckNotMatches         = "NotMatches"
	CheckGreaterOrEqual     = "GreaterOrEqual"
	CheckLessOrEqual        = "LessOrEqual"
	CheckInRange            = "InRange"
	CheckIsURL              = "IsURL"
	CheckIsEmail            = "IsEmail"
	CheckNoError            = "NoError"
	CheckIsUUID             = "IsUUID"
	CheckStruct             = "Struct"
	CheckSatisfies          = "Satisfies"
)

// NotNil fails when v is nil. Typed nils (a nil *T, map, slice, chan, func
// or interface stored in v) count as nil.
//
//	if err := req.NotNil(order, func() error { return ErrOrderRequired }); err != nil {
//		return err
//	}
func (r *Requirement) NotNil(v any, orElse ...FailureFactory) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	return r.fail(CheckNotNil, orElse, "actual_type", fmt.Sprintf("%T", v))
}

// IsNil fails when v is not nil, in the same sense as NotNil.
func (r *Requirement) IsNil(v any, orElse ...FailureFactory) error {
	if nilcheck.Interface(v) {
		return nil
	}

	return r.fail(CheckIsNil, orElse, "actual_type", fmt.Sprintf("%T", v), "value", v)
}

// IsTrue fails when condition is false.
func (r *Requirement) IsTrue(condition bool, orElse ...FailureFactory) error {
	if condition {
		return nil
	}

	return r.fail(CheckIsTrue, orElse)
}

// IsFalse fails when condition is true.
func (r *Requirement) IsFalse(condition bool, orElse ...FailureFactory) error {
	if !condition {
		return nil
	}

	return r.fail(CheckIsFalse, orElse)
}

// TextEmpty fails when s holds anything other than Unicode whitespace.
func (r *Requirement) TextEmpty(s string, orElse ...FailureFactory) error {
	if isBlank(s) {
		return nil
	}

	return r.fail(CheckTextEmpty, orElse, "value", s)
}

// TextNotEmpty fails when s is empty or only Unicode whitespace.
func (r *Requirement) TextNotEmpty(s string, orElse ...FailureFactory) error {
	if !isBlank(s) {
		return nil
	}

	return r.fail(CheckTextNotEmpty, orElse, "value", s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CollectionEmpty fails when c holds any element. c must be countable: an
// array, slice, map, channel, string or a value with a Len() int method.
// A nil slice or map is an empty collection; untyped nil and values that
// cannot be counted return an *ArgumentError.
func (r *Requirement) CollectionEmpty(c any, orElse ...FailureFactory) error {
	n, err := r.count(CheckCollectionEmpty, c)
	if err != nil {
		return err
	}

	if n == 0 {
		return nil
	}

	return r.fail(CheckCollectionEmpty, orElse, "count", n)
}

// CollectionNotEmpty fails when c holds no element. It accepts the same
// values as CollectionEmpty.
func (r *Requirement) CollectionNotEmpty(c any, orElse ...FailureFactory) error {
	n, err := r.count(CheckCollectionNotEmpty, c)
	if err != nil {
		return err
	}

	if n > 0 {
		return nil
	}

	return r.fail(CheckCollectionNotEmpty, orElse, "count", n)
}

func (r *Requirement) count(check string, c any) (int, error) {
	if c == nil {
		return 0, r.invalid(check, "collection", "nil is not a collection", nil)
	}

	n, ok := nilcheck.Len(c)
	if !ok {
		return 0, r.invalid(check, "collection", fmt.Sprintf("%T is not countable", c), nil)
	}

	return n, nil
}

// Matches fails when value contains no match of expr. Matching is RE2,
// unanchored and single-line; anchor expr with ^ and $ to match the whole
// value. An expr that does not compile returns an *ArgumentError wrapping
// ErrInvalidPattern.
func (r *Requirement) Matches(value, expr string, orElse ...FailureFactory) error {
	matched, err := pattern.MatchString(expr, value)
	if err != nil {
		return r.invalid(CheckMatches, "pattern", "pattern does not compile", err)
	}

	if matched {
		return nil
	}

	return r.fail(CheckMatches, orElse, "pattern", expr, "value", value)
}

// NotMatches fails when value contains a match of expr.
func (r *Requirement) NotMatches(value, expr string, orElse ...FailureFactory) error {
	matched, err := pattern.MatchString(expr, value)
	if err != nil {
		return r.invalid(CheckNotMatches, "pattern", "pattern does not compile", err)
	}

	if !matched {
		return nil
	}

	return r.fail(CheckNotMatches, orElse, "pattern", expr, "value", value)
}

// IsEmail fails when s does not match EmailPattern or contains Unicode
// whitespace.
func (r *Requirement) IsEmail(s string, orElse ...FailureFactory) error {
	matched, err := pattern.MatchString(EmailPattern, s)
	if err != nil {
		return r.invalid(CheckIsEmail, "pattern", "pattern does not compile", err)
	}

	if matched && !strings.ContainsFunc(s, unicode.IsSpace) {
		return nil
	}

	return r.fail(CheckIsEmail, orElse, "value", s)
}

// URLKind selects which URL forms IsURL accepts.
type URLKind int

const (
	// URLAbsoluteOrRelative accepts either form. It is the zero value.
	URLAbsoluteOrRelative URLKind = iota
	// URLAbsolute requires a scheme plus a host, opaque part or path.
	URLAbsolute
	// URLRelative requires a reference without a scheme.
	URLRelative
)

// String returns the kind name.
func (k URLKind) String() string {
	switch k {
	case URLAbsoluteOrRelative:
		return "absolute_or_relative"
	case URLAbsolute:
		return "absolute"
	case URLRelative:
		return "relative"
	default:
		return fmt.Sprintf("URLKind(%d)", int(k))
	}
}

// IsURL fails when s is not a URL of the given kind. Blank strings are never
// URLs. An unknown kind returns an *ArgumentError.
//
//	req.IsURL("https://example.com", requirement.URLAbsolute) // nil
//	req.IsURL("/orders/42", requirement.URLRelative)          // nil
//	req.IsURL("https://", requirement.URLAbsolute)            // failure
func (r *Requirement) IsURL(s string, kind URLKind, orElse ...FailureFactory) error {
	var ok bool

	switch kind {
	case URLAbsoluteOrRelative:
		ok = isAbsoluteURL(s) || isRelativeURL(s)
	case URLAbsolute:
		ok = isAbsoluteURL(s)
	case URLRelative:
		ok = isRelativeURL(s)
	default:
		return r.invalid(CheckIsURL, "kind", "unknown URL kind "+kind.String(), nil)
	}

	if ok {
		return nil
	}

	return r.fail(CheckIsURL, orElse, "kind", kind.String(), "value", s)
}

func isAbsoluteURL(s string) bool {
	if isBlank(s) {
		return false
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}

	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

func isRelativeURL(s string) bool {
	if isBlank(s) {
		return false
	}

	u, err := url.Parse(s)

	return err == nil && u.Scheme == ""
}

// NoError fails when err is not nil. The error text and type are attached
// to the failure details. Wrap err in a factory to return it instead.
func (r *Requirement) NoError(err error, orElse ...FailureFactory) error {
	if err == nil {
		return nil
	}

	return r.fail(CheckNoError, orElse, "error_type", fmt.Sprintf("%T", err), "error", err.Error())
}

// IsUUID fails when s is not a UUID in any form accepted by uuid.Parse.
func (r *Requirement) IsUUID(s string, orElse ...FailureFactory) error {
	if _, err := uuid.Parse(s); err == nil {
		return nil
	}

	return r.fail(CheckIsUUID, orElse, "value", s)
}
