package enums

import (
	"errors"
	"reflect"
	"testing"
)

type unregistered int

func assertInvalidType(t *testing.T, err error) {
	t.Helper()
	var target *InvalidEnumTypeError
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want *InvalidEnumTypeError", err)
	}
}

func TestDynamicFailsForNonEnumTypes(t *testing.T) {
	samples := []any{unregistered(1), "text", 3.5, struct{}{}, []int{1}}
	for _, sample := range samples {
		if _, err := ResolveByDescription(sample, "x", 0); err == nil {
			t.Fatalf("ResolveByDescription(%T) must fail", sample)
		} else {
			assertInvalidType(t, err)
		}
		if _, err := CodeByValue(sample, 1, "d"); err == nil {
			t.Fatalf("CodeByValue(%T) must fail", sample)
		} else {
			assertInvalidType(t, err)
		}
		if _, err := MinOf(sample); err == nil {
			t.Fatalf("MinOf(%T) must fail", sample)
		} else {
			assertInvalidType(t, err)
		}
		if _, err := DescriptionsOf(sample); err == nil {
			t.Fatalf("DescriptionsOf(%T) must fail", sample)
		} else {
			assertInvalidType(t, err)
		}
		if _, err := ProjectionsOf(sample); err == nil {
			t.Fatalf("ProjectionsOf(%T) must fail", sample)
		} else {
			assertInvalidType(t, err)
		}
	}
}

func TestDynamicNilSample(t *testing.T) {
	_, err := MinOf(nil)
	assertInvalidType(t, err)
}

func TestAttrOf(t *testing.T) {
	got, ok, err := AttrOf(kyle, AttrCode)
	if err != nil || !ok || got != "KB" {
		t.Fatalf("AttrOf(kyle, code) = %q, %v, %v", got, ok, err)
	}
	if _, ok, err := AttrOf(chef, AttrCode); err != nil || ok {
		t.Fatalf("AttrOf(chef, code) must report absent, got ok=%v err=%v", ok, err)
	}

	// A nil constant is an argument error, not a type error.
	_, _, err = AttrOf(nil, AttrCode)
	var invalidArg *InvalidArgumentError
	if !errors.As(err, &invalidArg) {
		t.Fatalf("AttrOf(nil) = %v, want *InvalidArgumentError", err)
	}

	_, _, err = AttrOf("not an enum", AttrCode)
	assertInvalidType(t, err)
}

func TestCodeOfAndDescriptionOf(t *testing.T) {
	if got, err := CodeOf(stan); err != nil || got != "SM" {
		t.Fatalf("CodeOf(stan) = %q, %v", got, err)
	}
	if got, err := DescriptionOf(chef); err != nil || got != "Chef" {
		t.Fatalf("DescriptionOf(chef) = %q, %v", got, err)
	}
	if got, err := CodeOf(character(7)); err != nil || got != "7" {
		t.Fatalf("CodeOf(7) = %q, %v", got, err)
	}
	if _, err := CodeOf(unregistered(1)); err == nil {
		t.Fatal("CodeOf(unregistered) must fail")
	}
}

func TestResolveByDescriptionDynamic(t *testing.T) {
	got, err := ResolveByDescription(character(0), "Kenny McCormick", -1)
	if err != nil || got != 2 {
		t.Fatalf("ResolveByDescription = %d, %v", got, err)
	}
	got, err = ResolveByDescription(character(0), "Towelie", -1)
	if err != nil || got != -1 {
		t.Fatalf("default not applied: %d, %v", got, err)
	}
}

func TestDynamicByValueLookups(t *testing.T) {
	if got, err := CodeByValue(character(0), 6, "Randy"); err != nil || got != "Randy" {
		t.Fatalf("CodeByValue(6) = %q, %v", got, err)
	}
	if got, err := DescriptionByValue(character(0), 4, ""); err != nil || got != "Stan Marsh" {
		t.Fatalf("DescriptionByValue(4) = %q, %v", got, err)
	}
}

func TestDynamicAggregates(t *testing.T) {
	if got, err := MinOf(character(0)); err != nil || got != 1 {
		t.Fatalf("MinOf = %d, %v", got, err)
	}
	if got, err := MaxOf(character(0)); err != nil || got != 5 {
		t.Fatalf("MaxOf = %d, %v", got, err)
	}
	ds, err := DescriptionsOf(character(0))
	if err != nil || len(ds) != 5 || ds[0] != "Eric Cartman" {
		t.Fatalf("DescriptionsOf = %v, %v", ds, err)
	}
	ps, err := ProjectionsOf(character(0))
	if err != nil || len(ps) != 5 {
		t.Fatalf("ProjectionsOf = %v, %v", ps, err)
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup(reflect.TypeOf(character(0)))
	if !ok || v.Name() != "Character" {
		t.Fatalf("Lookup = %v, %v", v, ok)
	}
	if _, ok := Lookup(reflect.TypeOf(unregistered(0))); ok {
		t.Fatal("Lookup must miss for unregistered types")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	_, err := New[character]("CharacterAgain").Add(cartman, "Cartman").Register()
	var invalidArg *InvalidArgumentError
	if !errors.As(err, &invalidArg) {
		t.Fatalf("second registration = %v, want *InvalidArgumentError", err)
	}
}
