// Package enumtest provides assertion helpers for test suites exercising
// registered enums.
package enumtest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celerik/go-baseline/enums"
)

// RequireSet fails the test immediately if sample's type is not a registered
// enum, and returns the registered view otherwise.
func RequireSet(t testing.TB, sample any) enums.View {
	t.Helper()
	v, err := enums.ViewOf(sample)
	require.NoError(t, err, "type %T must be a registered enum", sample)
	return v
}

// AssertRoundTrips asserts that every member's computed description resolves
// back to that same member: Resolve(DescriptionByValue(m)) == m for all m.
func AssertRoundTrips(t testing.TB, v enums.View) bool {
	t.Helper()
	ok := true
	for _, m := range v.Members() {
		desc := v.DescriptionByValue(m.Value, m.Name)
		got, found := v.Resolve(desc)
		ok = assert.True(t, found, "description %q of member %s must resolve", desc, m.Name) && ok
		ok = assert.Equal(t, m.Value, got, "description %q must resolve to %s", desc, m.Name) && ok
	}
	return ok
}

// AssertInvalidEnumType asserts that err is an *enums.InvalidEnumTypeError,
// the configuration-error class reserved for non-enum type arguments.
func AssertInvalidEnumType(t testing.TB, err error) bool {
	t.Helper()
	var target *enums.InvalidEnumTypeError
	return assert.True(t, errors.As(err, &target), "expected *enums.InvalidEnumTypeError, got %v (%s)", err, typeName(err))
}

// AssertInvalidArgument asserts that err is an *enums.InvalidArgumentError,
// the class reserved for nil or unusable required arguments.
func AssertInvalidArgument(t testing.TB, err error) bool {
	t.Helper()
	var target *enums.InvalidArgumentError
	return assert.True(t, errors.As(err, &target), "expected *enums.InvalidArgumentError, got %v (%s)", err, typeName(err))
}

func typeName(err error) string {
	if err == nil {
		return "<nil>"
	}
	return reflect.TypeOf(err).String()
}
