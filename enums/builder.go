package enums

import "reflect"

// Builder declares an enum's members programmatically.
// Usage:
//
//	var Characters = enums.New[Character]("Character").
//	    Add(Cartman, "Cartman", enums.WithCode("EC"), enums.WithDescription("Eric Cartman")).
//	    Add(Chef, "Chef").
//	    MustRegister()
//
// Member order is declaration order: every scan and list operation on the
// built Set preserves the order of Add calls.
type Builder[E Integer] struct {
	name    string
	members []Member
	err     error
}

// MemberOption attaches an optional tag to a member being added.
type MemberOption func(*Member)

// WithCode sets the member's short machine-readable code tag.
func WithCode(code string) MemberOption {
	return func(m *Member) {
		m.code = code
		m.hasCode = true
	}
}

// WithDescription sets the member's human-readable description tag.
func WithDescription(desc string) MemberOption {
	return func(m *Member) {
		m.desc = desc
		m.hasDesc = true
	}
}

// New starts a Builder for the enum type E under the given name.
func New[E Integer](name string) *Builder[E] {
	b := &Builder[E]{name: name}
	if name == "" {
		b.err = &InvalidArgumentError{Field: "name", Reason: "must not be empty"}
	}
	return b
}

// Add appends one member. Names and values must be unique within the set;
// violations surface from Build.
func (b *Builder[E]) Add(c E, name string, opts ...MemberOption) *Builder[E] {
	m := Member{Name: name, Value: int64(c)}
	for _, o := range opts {
		if o != nil {
			o(&m)
		}
	}
	if b.err == nil && name == "" {
		b.err = &InvalidArgumentError{Field: "name", Reason: "member name must not be empty"}
	}
	b.members = append(b.members, m)
	return b
}

// Build validates the declared members and returns the immutable Set. It does
// not touch the package registry; use Register when the dynamic operations
// should find the set too.
func (b *Builder[E]) Build() (*Set[E], error) {
	if b.err != nil {
		return nil, b.err
	}
	names := make(map[string]struct{}, len(b.members))
	byValue := make(map[int64]int, len(b.members))
	for i, m := range b.members {
		if _, dup := names[m.Name]; dup {
			return nil, &InvalidArgumentError{Field: "name", Reason: "duplicate member name " + m.Name}
		}
		names[m.Name] = struct{}{}
		if _, dup := byValue[m.Value]; dup {
			return nil, &InvalidArgumentError{Field: "value", Reason: "duplicate member value for " + m.Name}
		}
		byValue[m.Value] = i
	}
	return &Set[E]{
		name:    b.name,
		rt:      reflect.TypeOf(*new(E)),
		members: append([]Member(nil), b.members...),
		byValue: byValue,
	}, nil
}

// Register builds the set and publishes it in the package registry so the
// dynamic (reflect.Type keyed) operations can resolve type E. Registering the
// same type twice is an error.
func (b *Builder[E]) Register() (*Set[E], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := register(s.rt, s); err != nil {
		return nil, err
	}
	return s, nil
}

// MustRegister is Register panicking on error. Intended for package-level
// enum declarations where a failure is a programming bug.
func (b *Builder[E]) MustRegister() *Set[E] {
	s, err := b.Register()
	if err != nil {
		panic(err)
	}
	return s
}
