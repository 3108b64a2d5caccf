// Package enumjson marshals enum values as their code tags and decodes them
// back, accepting codes, descriptions, or declared names on the wire.
package enumjson

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/celerik/go-baseline/enums"
)

// Coded wraps an enum value with code-based JSON marshaling. The zero value
// of E must be resolvable through the package registry, i.e. the enum must
// have been registered through its Builder.
//
//	type payload struct {
//	    Character enumjson.Coded[Character] `json:"character"`
//	}
type Coded[E enums.Integer] struct {
	V E
}

// MarshalJSON encodes the wrapped value as its code string (declared-name
// fallback, decimal string for undefined values).
func (c Coded[E]) MarshalJSON() ([]byte, error) {
	v, err := view[E]()
	if err != nil {
		return nil, err
	}
	raw := int64(c.V)
	return json.Marshal(v.CodeByValue(raw, fmt.Sprintf("%d", raw)))
}

// UnmarshalJSON decodes a string as a code tag first, then as a description
// or declared name. An unknown string is a data error, reported as
// *enums.InvalidArgumentError.
func (c *Coded[E]) UnmarshalJSON(data []byte) error {
	v, err := view[E]()
	if err != nil {
		return err
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	got, err := decode(v, s)
	if err != nil {
		return err
	}
	c.V = E(got)
	return nil
}

// MarshalByCode encodes c as its code string using the given set.
func MarshalByCode[E enums.Integer](s *enums.Set[E], c E) ([]byte, error) {
	raw := int64(c)
	return json.Marshal(s.CodeByValue(raw, fmt.Sprintf("%d", raw)))
}

// UnmarshalByCode decodes a JSON string into a member of s, matching code
// tags first, then descriptions and declared names.
func UnmarshalByCode[E enums.Integer](s *enums.Set[E], data []byte) (E, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return 0, err
	}
	got, err := decode(s, str)
	if err != nil {
		return 0, err
	}
	return E(got), nil
}

func view[E enums.Integer]() (enums.View, error) {
	rt := reflect.TypeOf(*new(E))
	v, ok := enums.Lookup(rt)
	if !ok {
		return nil, &enums.InvalidEnumTypeError{Type: rt}
	}
	return v, nil
}

func decode(v enums.View, s string) (int64, error) {
	for _, m := range v.Members() {
		if code, ok := m.Code(); ok && code == s {
			return m.Value, nil
		}
	}
	if got, ok := v.Resolve(s); ok {
		return got, nil
	}
	return 0, &enums.InvalidArgumentError{
		Field:  "value",
		Reason: fmt.Sprintf("%q is not a code, description, or name of enum %s", s, v.Name()),
	}
}
