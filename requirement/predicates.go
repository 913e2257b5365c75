package requirement

import (
	"cmp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

const (
	maxAmountExponent = 18
	minAmountExponent = -18
	maxScale          = 18
)

// Positive reports n > 0.
func Positive[T Number](n T) bool {
	return n > 0
}

// NonNegative reports n >= 0.
func NonNegative[T Number](n T) bool {
	return n >= 0
}

// NotZero reports n != 0.
func NotZero[T Number](n T) bool {
	return n != 0
}

// Between reports lower <= n <= upper. It is false when lower > upper.
func Between[T cmp.Ordered](n, lower, upper T) bool {
	return cmp.Compare(n, lower) >= 0 && cmp.Compare(n, upper) <= 0
}

// ValidUUID reports whether s parses as a UUID.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)

	return err == nil
}

// ValidAmount reports whether d's exponent lies in [-18, 18].
func ValidAmount(d decimal.Decimal) bool {
	exp := d.Exponent()

	return exp >= minAmountExponent && exp <= maxAmountExponent
}

// ValidScale reports whether scale lies in [0, 18].
func ValidScale(scale int) bool {
	return scale >= 0 && scale <= maxScale
}

// PositiveDecimal reports d > 0.
func PositiveDecimal(d decimal.Decimal) bool {
	return d.IsPositive()
}

// NonNegativeDecimal reports d >= 0.
func NonNegativeDecimal(d decimal.Decimal) bool {
	return !d.IsNegative()
}
