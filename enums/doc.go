// Package enums maps enum constants to optional per-member metadata (a short
// machine-readable code and a human-readable description) and projects the
// full member set into caller-shaped lists.
//
// Metadata is declared once, when the enum is defined, through a fluent
// Builder and stored in an immutable Set — an explicit registration-time
// table queried by value at call time. Nothing is scanned at runtime beyond
// that table.
//
// The design separates two access paths:
//  1. Typed    Methods on *Set[E] for callers that hold the enum type:
//              lookups cannot be handed a wrong type, so they never return a
//              type error.
//  2. Dynamic  Package-level functions (ResolveByDescription, CodeOf,
//              ProjectionsOf, ...) keyed by reflect.Type through the package
//              registry, for callers handling enum values generically. These
//              fail fast with *InvalidEnumTypeError when the argument's type
//              was never registered.
//
// Declaring an enum:
//
//	type Character int
//
//	const (
//	    Cartman Character = iota + 1
//	    Kenny
//	)
//
//	var Characters = enums.New[Character]("Character").
//	    Add(Cartman, "Cartman", enums.WithCode("EC"), enums.WithDescription("Eric Cartman")).
//	    Add(Kenny, "Kenny", enums.WithCode("KM"), enums.WithDescription("Kenny McCormick")).
//	    MustRegister()
//
// Fallback rules
//
// A member's description defaults to its declared name everywhere. Its code
// defaults to the declared name in the convenience lookups (Code, CodeByValue)
// but reports absence from the typed attribute lookup (Attr, AttrOf), so a
// caller can distinguish "no code declared" from "code happens to equal the
// name".
//
// Not-found conditions (unknown description, undefined integer value) resolve
// to caller-supplied defaults and are never errors. Errors are reserved for
// configuration mistakes: an unregistered type (*InvalidEnumTypeError), a nil
// constant (*InvalidArgumentError), or Min/Max over an empty set
// (*EmptyEnumError).
//
// Sets are immutable after Build and every operation is a pure function of
// its inputs, so all of the package is safe for unrestricted concurrent use.
package enums
