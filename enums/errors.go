package enums

import (
	"fmt"
	"reflect"
)

// InvalidEnumTypeError indicates that a type passed to a dynamic operation is
// not a registered enumeration. This is a configuration error: the caller
// wired the wrong type, or forgot to register the enum. It is raised before
// any other work is attempted.
type InvalidEnumTypeError struct {
	Type reflect.Type // nil when the argument itself was nil
}

func (e *InvalidEnumTypeError) Error() string {
	if e.Type == nil {
		return "not a registered enum type: <nil>"
	}
	return fmt.Sprintf("not a registered enum type: %s", e.Type)
}

// InvalidArgumentError indicates that a required argument was nil or otherwise
// unusable where a value was mandatory. Distinct from "not found", which is
// never an error: lookups that fail to match resolve to caller defaults.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// EmptyEnumError indicates an aggregate operation (Min, Max) over an enum with
// zero registered members. An empty set is accepted at registration time, but
// there is no meaningful minimum or maximum to report, and no integer sentinel
// would be distinguishable from a legitimate member value.
type EmptyEnumError struct {
	Name string
}

func (e *EmptyEnumError) Error() string {
	return fmt.Sprintf("enum %s has no members", e.Name)
}
