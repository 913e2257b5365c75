//go:build unit

package requirement_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thenoobsbr/lib-requirement/requirement"
)

var errInvalidOrder = errors.New("invalid order")

func ExampleDefault() {
	err := requirement.Default().IsTrue(false)

	fmt.Println(err)
	fmt.Println(requirement.IsFailure(err))

	// Output:
	// Requirement "IsTrue" was not fulfilled
	// true
}

func ExampleWithFailure() {
	req := requirement.WithFailure(func() error { return errInvalidOrder })

	fmt.Println(req.TextNotEmpty("   "))
	fmt.Println(req.TextNotEmpty("", func() error { return errors.New("order id is required") }))
	fmt.Println(req.TextNotEmpty("ord-1"))

	// Output:
	// invalid order
	// order id is required
	// <nil>
}

func ExampleInRange() {
	fmt.Println(requirement.InRange(nil, 3.14, 3.0, 3.1415))
	fmt.Println(requirement.InRange(nil, 2.9, 3.0, 3.1415))

	// Output:
	// <nil>
	// Requirement "InRange" was not fulfilled
}

func ExampleGreaterOrEqualFunc() {
	issued := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println(requirement.GreaterOrEqualFunc(nil, due, issued, time.Time.Compare))

	amount := decimal.RequireFromString("0.00")
	fmt.Println(requirement.GreaterOrEqualFunc(nil, amount, decimal.RequireFromString("0.01"), decimal.Decimal.Cmp))

	// Output:
	// <nil>
	// Requirement "GreaterOrEqual" was not fulfilled
}

func ExampleRequirement_CollectionNotEmpty() {
	req := requirement.Default()

	fmt.Println(req.CollectionNotEmpty([]string{"a"}))
	fmt.Println(req.CollectionNotEmpty([]string(nil)))
	fmt.Println(requirement.IsInvalidArgument(req.CollectionNotEmpty(nil)))

	// Output:
	// <nil>
	// Requirement "CollectionNotEmpty" was not fulfilled
	// true
}

func ExampleRequirement_IsURL() {
	req := requirement.Default()

	fmt.Println(req.IsURL("https://example.com", requirement.URLAbsolute))
	fmt.Println(req.IsURL("example.com", requirement.URLAbsolute))
	fmt.Println(req.IsURL("example.com", requirement.URLRelative))

	// Output:
	// <nil>
	// Requirement "IsURL" was not fulfilled
	// <nil>
}

func ExampleRequirement_Struct() {
	type transfer struct {
		ID     string `validate:"required,uuid"`
		Amount string `validate:"required,positive_amount"`
	}

	req := requirement.Default()

	fmt.Println(req.Struct(transfer{ID: "123e4567-e89b-12d3-a456-426614174000", Amount: "10.00"}))
	fmt.Println(req.Struct(transfer{ID: "123e4567-e89b-12d3-a456-426614174000", Amount: "0"}))

	// Output:
	// <nil>
	// Requirement "Struct" was not fulfilled
}
