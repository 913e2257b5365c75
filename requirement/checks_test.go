//go:build unit

package requirement

import (
	"container/list"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFailure(t *testing.T, err error, check string) *FailedError {
	t.Helper()

	require.Error(t, err)

	var failed *FailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, check, failed.Check)
	assert.Equal(t, defaultMessage(check), err.Error())
	assert.ErrorIs(t, err, ErrRequirementFailed)

	return failed
}

func requireArgumentError(t *testing.T, err error, check string) *ArgumentError {
	t.Helper()

	require.Error(t, err)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, check, argErr.Check)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrRequirementFailed)

	return argErr
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

type tally map[string]int

func (t tally) Len() int { return len(t) }

func TestNotNilAndIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *int
		nilSlice []int
		nilMap   map[string]int
		nilChan  chan int
		nilFunc  func()
		nilIface fmt.Stringer
		ptrIface fmt.Stringer = (*stringer)(nil)
		n        = 1
	)

	tests := []struct {
		name  string
		value any
		isNil bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil slice", nilSlice, true},
		{"nil map", nilMap, true},
		{"nil chan", nilChan, true},
		{"nil func", nilFunc, true},
		{"nil interface", nilIface, true},
		{"typed nil in interface", ptrIface, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"whitespace string", "   ", false},
		{"empty struct", struct{}{}, false},
		{"pointer", &n, false},
		{"empty slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			notNil := Default().NotNil(tt.value)
			isNil := Default().IsNil(tt.value)

			if tt.isNil {
				requireFailure(t, notNil, CheckNotNil)
				assert.NoError(t, isNil)
			} else {
				assert.NoError(t, notNil)
				requireFailure(t, isNil, CheckIsNil)
			}
		})
	}
}

func TestIsTrueAndIsFalse(t *testing.T) {
	t.Parallel()

	for _, b := range []bool{true, false} {
		isTrue := Default().IsTrue(b)
		isFalse := Default().IsFalse(b)

		assert.Equal(t, b, isTrue == nil)
		assert.Equal(t, !b, isFalse == nil)
	}

	err := Default().IsTrue(false)
	requireFailure(t, err, CheckIsTrue)
	assert.Contains(t, err.Error(), "IsTrue")

	requireFailure(t, Default().IsFalse(true), CheckIsFalse)
}

func TestTextEmptyAndTextNotEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		blank bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\r\n", true},
		{"no-break space", "\u00a0", true},
		{"em space", "\u2003", true},
		{"letter", "a", false},
		{"padded", "  a  ", false},
		{"zero", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			empty := Default().TextEmpty(tt.value)
			notEmpty := Default().TextNotEmpty(tt.value)

			assert.Equal(t, tt.blank, empty == nil)
			assert.Equal(t, !tt.blank, notEmpty == nil)

			if tt.blank {
				requireFailure(t, notEmpty, CheckTextNotEmpty)
			} else {
				requireFailure(t, empty, CheckTextEmpty)
			}
		})
	}
}

type bag struct{ items []string }

func (b *bag) Len() int { return len(b.items) }

func TestCollectionChecks(t *testing.T) {
	t.Parallel()

	var nilSlice []string
	var nilTally tally

	full := list.New()
	full.PushBack(1)

	ch := make(chan int, 2)
	ch <- 1

	tests := []struct {
		name  string
		value any
		count int
	}{
		{"empty slice", []int{}, 0},
		{"nil slice", nilSlice, 0},
		{"slice", []int{1, 2}, 2},
		{"empty map", map[string]int{}, 0},
		{"map", map[string]int{"a": 1}, 1},
		{"empty string", "", 0},
		{"string", "abc", 3},
		{"zero-length array", [0]int{}, 0},
		{"array", [3]int{}, 3},
		{"pointer to array", &[2]int{}, 2},
		{"buffered chan", ch, 1},
		{"empty list", list.New(), 0},
		{"list", full, 1},
		{"lengther", &bag{items: []string{"x"}}, 1},
		{"nil named slice", sort.IntSlice(nil), 0},
		{"nil named map", nilTally, 0},
		{"named map", tally{"a": 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			empty := Default().CollectionEmpty(tt.value)
			notEmpty := Default().CollectionNotEmpty(tt.value)

			assert.Equal(t, tt.count == 0, empty == nil)
			assert.Equal(t, tt.count > 0, notEmpty == nil)

			if tt.count == 0 {
				requireFailure(t, notEmpty, CheckCollectionNotEmpty)
			} else {
				failed := requireFailure(t, empty, CheckCollectionEmpty)
				assert.Contains(t, failed.Details, fmt.Sprintf("count=%d", tt.count))
			}
		})
	}
}

func TestCollectionChecks_InvalidArgument(t *testing.T) {
	t.Parallel()

	var nilBag *bag

	tests := []struct {
		name  string
		value any
	}{
		{"untyped nil", nil},
		{"int", 42},
		{"struct", struct{}{}},
		{"nil lengther", nilBag},
		{"nil pointer to array", (*[2]int)(nil)},
	}

	called := false
	factory := func() error {
		called = true
		return errCallSite
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireArgumentError(t, WithFailure(factory).CollectionEmpty(tt.value, factory), CheckCollectionEmpty)
			requireArgumentError(t, WithFailure(factory).CollectionNotEmpty(tt.value, factory), CheckCollectionNotEmpty)
		})
	}

	assert.False(t, called, "factories must not be consulted for argument errors")
}

func TestMatchesAndNotMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		expr    string
		matches bool
	}{
		{"digits", "0123456789", `\d+`, true},
		{"letters against digits", "aaaaaaaaaa", `\d+`, false},
		{"unanchored", "order-42", `\d+`, true},
		{"anchored", "order-42", `^\d+$`, false},
		{"empty pattern", "anything", ``, true},
		{"single line", "a\nb", `^b$`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := Default().Matches(tt.value, tt.expr)
			notMatches := Default().NotMatches(tt.value, tt.expr)

			assert.Equal(t, tt.matches, matches == nil)
			assert.Equal(t, !tt.matches, notMatches == nil)

			if tt.matches {
				requireFailure(t, notMatches, CheckNotMatches)
			} else {
				failed := requireFailure(t, matches, CheckMatches)
				assert.Contains(t, failed.Details, "pattern="+tt.expr)
			}
		})
	}
}

func TestMatches_InvalidPattern(t *testing.T) {
	t.Parallel()

	err := WithFailure(func() error { return errInstance }).Matches("abc", "(")
	argErr := requireArgumentError(t, err, CheckMatches)
	assert.Equal(t, "pattern", argErr.Argument)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	requireArgumentError(t, Default().NotMatches("abc", "[a-"), CheckNotMatches)
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"john.doe@example.co.uk", true},
		{"a@b.c", true},
		{"john.doe@", false},
		{"john.doe@example", false},
		{"@example.com", false},
		{"john doe@example.com", false},
		{"john\u00a0doe@example.com", false},
		{"john\u2003doe@example.com", false},
		{"john\vdoe@example.com", false},
		{"john.doe@example.com\u0085", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			err := Default().IsEmail(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				requireFailure(t, err, CheckIsEmail)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		absolute bool
		relative bool
	}{
		{"https://example.com", true, false},
		{"https://example.com/path?q=1#frag", true, false},
		{"mailto:john@example.com", true, false},
		{"file:///etc/hosts", true, false},
		{"https://", false, false},
		{"example.com", false, true},
		{"/orders/42", false, true},
		{"../up?x=1", false, true},
		{"", false, false},
		{"   ", false, false},
		{"http://[::1", false, false},
		{"ht tp://example.com", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.absolute, Default().IsURL(tt.value, URLAbsolute) == nil, "absolute")
			assert.Equal(t, tt.relative, Default().IsURL(tt.value, URLRelative) == nil, "relative")
			assert.Equal(t, tt.absolute || tt.relative, Default().IsURL(tt.value, URLAbsoluteOrRelative) == nil, "either")
		})
	}

	requireFailure(t, Default().IsURL("example.com", URLAbsolute), CheckIsURL)
}

func TestIsURL_UnknownKind(t *testing.T) {
	t.Parallel()

	argErr := requireArgumentError(t, Default().IsURL("https://example.com", URLKind(99)), CheckIsURL)
	assert.Equal(t, "kind", argErr.Argument)
	assert.Contains(t, argErr.Reason, "URLKind(99)")
}

func TestURLKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "absolute_or_relative", URLKind(0).String())
	assert.Equal(t, "absolute", URLAbsolute.String())
	assert.Equal(t, "relative", URLRelative.String())
	assert.Equal(t, "URLKind(-1)", URLKind(-1).String())
}

func TestNoError(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().NoError(nil))

	failed := requireFailure(t, Default().NoError(errors.New("disk full")), CheckNoError)
	assert.Contains(t, failed.Details, "error=disk full")
	assert.Contains(t, failed.Details, "error_type=*errors.errorString")
}

func TestIsUUID(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	require.NoError(t, Default().IsUUID("123e4567e89b12d3a456426614174000"))
	requireFailure(t, Default().IsUUID("not-a-uuid"), CheckIsUUID)
	requireFailure(t, Default().IsUUID(""), CheckIsUUID)
}

func TestChecks_NilRequirementBehavesLikeDefault(t *testing.T) {
	t.Parallel()

	var req *Requirement

	requireFailure(t, req.IsTrue(false), CheckIsTrue)
	require.NoError(t, req.TextNotEmpty("x"))
	requireArgumentError(t, req.CollectionEmpty(nil), CheckCollectionEmpty)
	require.ErrorIs(t, req.IsFalse(true, func() error { return errCallSite }), errCallSite)
}
