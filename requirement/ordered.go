package requirement

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/thenoobsbr/lib-requirement/requirement/internal/nilcheck"
)

// GreaterOrEqual fails unless value >= minimum. A nil r behaves like Default().
//
//	if err := requirement.GreaterOrEqual(req, qty, 1); err != nil {
//		return err
//	}
func GreaterOrEqual[T cmp.Ordered](r *Requirement, value, minimum T, orElse ...FailureFactory) error {
	return GreaterOrEqualFunc(r, value, minimum, cmp.Compare[T], orElse...)
}

// GreaterOrEqualFunc is GreaterOrEqual for types ordered by compare, which
// returns a negative number, zero or a positive number as a is less than,
// equal to or greater than b. time.Time.Compare and decimal.Decimal.Cmp fit.
func GreaterOrEqualFunc[T any](r *Requirement, value, minimum T, compare func(a, b T) int, orElse ...FailureFactory) error {
	if compare == nil {
		return r.invalid(CheckGreaterOrEqual, "compare", "comparison function is nil", nil)
	}

	if compare(value, minimum) >= 0 {
		return nil
	}

	return r.fail(CheckGreaterOrEqual, orElse, "value", value, "minimum", minimum)
}

// LessOrEqual fails unless value <= maximum.
func LessOrEqual[T cmp.Ordered](r *Requirement, value, maximum T, orElse ...FailureFactory) error {
	return LessOrEqualFunc(r, value, maximum, cmp.Compare[T], orElse...)
}

// LessOrEqualFunc is LessOrEqual for types ordered by compare.
func LessOrEqualFunc[T any](r *Requirement, value, maximum T, compare func(a, b T) int, orElse ...FailureFactory) error {
	if compare == nil {
		return r.invalid(CheckLessOrEqual, "compare", "comparison function is nil", nil)
	}

	if compare(value, maximum) <= 0 {
		return nil
	}

	return r.fail(CheckLessOrEqual, orElse, "value", value, "maximum", maximum)
}

// InRange fails unless lower <= value <= upper. Both bounds are inclusive;
// when lower > upper no value is in range.
//
//	requirement.InRange(nil, 3.14, 3.0, 3.1415) // nil
func InRange[T cmp.Ordered](r *Requirement, value, lower, upper T, orElse ...FailureFactory) error {
	return InRangeFunc(r, value, lower, upper, cmp.Compare[T], orElse...)
}

// InRangeFunc is InRange for types ordered by compare.
func InRangeFunc[T any](r *Requirement, value, lower, upper T, compare func(a, b T) int, orElse ...FailureFactory) error {
	if compare == nil {
		return r.invalid(CheckInRange, "compare", "comparison function is nil", nil)
	}

	if compare(value, lower) >= 0 && compare(value, upper) <= 0 {
		return nil
	}

	return r.fail(CheckInRange, orElse, "value", value, "lower", lower, "upper", upper)
}

// OfType fails when v does not hold a T. A nil v, typed or not, returns an
// *ArgumentError since there is no value whose type could be inspected.
//
//	if err := requirement.OfType[fmt.Stringer](req, v); err != nil {
//		return err
//	}
func OfType[T any](r *Requirement, v any, orElse ...FailureFactory) error {
	if nilcheck.Interface(v) {
		return r.invalid(CheckOfType, "value", "nil has no type to inspect", nil)
	}

	if _, ok := v.(T); ok {
		return nil
	}

	return r.fail(CheckOfType, orElse,
		"expected_type", reflect.TypeFor[T]().String(),
		"actual_type", fmt.Sprintf("%T", v),
	)
}
