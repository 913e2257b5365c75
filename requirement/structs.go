package requirement

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/thenoobsbr/lib-requirement/requirement/security"
)

// ErrValidatorInit is returned when custom validation registration fails.
var ErrValidatorInit = errors.New("validator initialization failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidator creates the validator with the decimal-aware tags
// positive_decimal, positive_amount and nonnegative_amount.
func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// decimal.Decimal is read directly; registering a custom type func that
	// returns the same type loops forever inside the validator.
	if err := vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)

		return ok && PositiveDecimal(value)
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'positive_decimal': %w", ErrValidatorInit, err)
	}

	if err := vld.RegisterValidation("positive_amount", amountValidation(PositiveDecimal)); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'positive_amount': %w", ErrValidatorInit, err)
	}

	if err := vld.RegisterValidation("nonnegative_amount", amountValidation(NonNegativeDecimal)); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'nonnegative_amount': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

// amountValidation validates decimal strings. Empty strings pass so that
// "required" stays responsible for presence.
func amountValidation(accept func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		if str == "" {
			return true
		}

		d, err := decimal.NewFromString(str)
		if err != nil {
			return false
		}

		return accept(d)
	}
}

// Validator returns the shared validator used by Struct and Satisfies.
func Validator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})

	return validate, errValidate
}

// Struct fails when v violates its `validate` struct tags. The first
// violation is described in the failure details. v must be a struct or a
// non-nil pointer to one; anything else returns an *ArgumentError.
//
//	type Transfer struct {
//		ID     string `validate:"required,uuid"`
//		Amount string `validate:"required,positive_amount"`
//	}
//
//	if err := req.Struct(transfer); err != nil {
//		return err
//	}
func (r *Requirement) Struct(v any, orElse ...FailureFactory) error {
	vld, err := Validator()
	if err != nil {
		return r.invalid(CheckStruct, "validator", "validator is unavailable", err)
	}

	err = vld.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return r.invalid(CheckStruct, "value", "struct validation requires a struct", err)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return r.invalid(CheckStruct, "value", "struct could not be validated", err)
	}

	return r.fail(CheckStruct, orElse, fieldErrorPairs(fieldErrors)...)
}

// Satisfies fails when v does not pass the validator tag expression, e.g.
// "required,email" or "gte=1,lte=100". A blank or unknown tag returns an
// *ArgumentError.
func (r *Requirement) Satisfies(v any, tag string, orElse ...FailureFactory) error {
	if isBlank(tag) {
		return r.invalid(CheckSatisfies, "tag", "tag is blank", nil)
	}

	vld, err := Validator()
	if err != nil {
		return r.invalid(CheckSatisfies, "validator", "validator is unavailable", err)
	}

	err = validateVar(vld, v, tag)
	if errors.Is(err, errUndefinedTag) {
		return r.invalid(CheckSatisfies, "tag", fmt.Sprintf("tag %q is not valid", tag), err)
	}

	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return r.invalid(CheckSatisfies, "value", "value could not be validated", err)
	}

	first := fieldErrors[0]

	return r.fail(CheckSatisfies, orElse, "tag", tag, "failed_tag", first.Tag(), "value", v)
}

var errUndefinedTag = errors.New("undefined validation tag")

// validateVar turns the validator's panic on undefined tags into errUndefinedTag.
func validateVar(vld *validator.Validate, v any, tag string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errUndefinedTag, rec)
		}
	}()

	return vld.Var(v, tag)
}

func fieldErrorPairs(fieldErrors validator.ValidationErrors) []any {
	first := fieldErrors[0]
	field := toSnakeCase(first.Field())

	pairs := []any{
		"invalid_field", field,
		"tag", first.Tag(),
	}

	if first.Param() != "" {
		pairs = append(pairs, "param", first.Param())
	}

	pairs = append(pairs, "value", security.RedactValue(field, first.Value()))

	if len(fieldErrors) > 1 {
		pairs = append(pairs, "count", len(fieldErrors))
	}

	return pairs
}

// toSnakeCase converts a PascalCase or camelCase string to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder

	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}
