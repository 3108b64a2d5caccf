package enums

import (
	"fmt"
	"reflect"
	"sync"
)

// View is the type-parameter-free read surface of a registered Set, used by
// the dynamic operations and by callers (codecs, schema generators) that hold
// a reflect.Type rather than the enum type itself. Every *Set[E] is a View.
type View interface {
	Name() string
	Len() int
	Type() reflect.Type
	Members() []Member
	MemberByValue(v int64) (Member, bool)
	Resolve(description string) (int64, bool)
	AttrByValue(v int64, kind Attr) (string, bool)
	CodeByValue(v int64, def string) string
	DescriptionByValue(v int64, def string) string
	Min() (int64, error)
	Max() (int64, error)
	Descriptions() []string
	Projections() []Projection
}

var registry sync.Map // reflect.Type -> View

func register(rt reflect.Type, v View) error {
	if _, loaded := registry.LoadOrStore(rt, v); loaded {
		return &InvalidArgumentError{Field: "type", Reason: fmt.Sprintf("enum type %s already registered", rt)}
	}
	return nil
}

// Lookup returns the registered View for the given type.
func Lookup(t reflect.Type) (View, bool) {
	v, ok := registry.Load(t)
	if !ok {
		return nil, false
	}
	return v.(View), true
}

// ViewOf resolves a sample value (a constant, or any value of the enum type)
// to its registered View. All type-validity failures are reported as
// *InvalidEnumTypeError before any other work, per the fail-fast contract.
func ViewOf(sample any) (View, error) {
	if sample == nil {
		return nil, &InvalidEnumTypeError{}
	}
	rt := reflect.TypeOf(sample)
	v, ok := Lookup(rt)
	if !ok {
		return nil, &InvalidEnumTypeError{Type: rt}
	}
	return v, nil
}

func valueOf(constant any) int64 {
	rv := reflect.ValueOf(constant)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	default:
		return rv.Int()
	}
}

// ResolveByDescription scans the enum type of sample in declaration order and
// returns the underlying value of the first member whose description tag (or,
// failing that, declared name) equals desc. Returns def when nothing matches.
// Fails with *InvalidEnumTypeError when sample's type is not a registered enum.
func ResolveByDescription(sample any, desc string, def int64) (int64, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return 0, err
	}
	if got, ok := v.Resolve(desc); ok {
		return got, nil
	}
	return def, nil
}

// AttrOf returns the requested tag for the given constant, reporting false
// when the tag is absent. A nil constant fails with *InvalidArgumentError; a
// constant of an unregistered type fails with *InvalidEnumTypeError.
func AttrOf(constant any, kind Attr) (string, bool, error) {
	if constant == nil {
		return "", false, &InvalidArgumentError{Field: "constant", Reason: "must not be nil"}
	}
	v, err := ViewOf(constant)
	if err != nil {
		return "", false, err
	}
	got, ok := v.AttrByValue(valueOf(constant), kind)
	return got, ok, nil
}

// CodeOf returns the constant's code tag with the declared-name fallback
// (decimal string for undefined values). The only failure mode is an
// unregistered type.
func CodeOf(constant any) (string, error) {
	v, err := ViewOf(constant)
	if err != nil {
		return "", err
	}
	raw := valueOf(constant)
	return v.CodeByValue(raw, fmt.Sprintf("%d", raw)), nil
}

// DescriptionOf is symmetric to CodeOf using the description tag.
func DescriptionOf(constant any) (string, error) {
	v, err := ViewOf(constant)
	if err != nil {
		return "", err
	}
	raw := valueOf(constant)
	return v.DescriptionByValue(raw, fmt.Sprintf("%d", raw)), nil
}

// CodeByValue converts an integer to its member of sample's enum type and
// returns the member's code with the name fallback; returns def when the
// integer is not a defined value.
func CodeByValue(sample any, value int64, def string) (string, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return "", err
	}
	return v.CodeByValue(value, def), nil
}

// DescriptionByValue is symmetric to CodeByValue using the description tag.
func DescriptionByValue(sample any, value int64, def string) (string, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return "", err
	}
	return v.DescriptionByValue(value, def), nil
}

// MinOf returns the smallest underlying value of sample's enum type.
func MinOf(sample any) (int64, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return 0, err
	}
	return v.Min()
}

// MaxOf returns the largest underlying value of sample's enum type.
func MaxOf(sample any) (int64, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return 0, err
	}
	return v.Max()
}

// DescriptionsOf returns one description (or fallback name) per member of
// sample's enum type, in declaration order.
func DescriptionsOf(sample any) ([]string, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return nil, err
	}
	return v.Descriptions(), nil
}

// ProjectionsOf returns the default projection records for sample's enum
// type, sorted by value ascending.
func ProjectionsOf(sample any) ([]Projection, error) {
	v, err := ViewOf(sample)
	if err != nil {
		return nil, err
	}
	return v.Projections(), nil
}

var _ View = (*Set[int])(nil)
