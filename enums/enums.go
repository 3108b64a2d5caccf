package enums

import (
	"reflect"
	"sort"
	"strconv"
)

// Integer is the set of underlying kinds an enum type may be declared over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Attr identifies one of the optional metadata tags a member may carry.
type Attr int

const (
	// AttrCode is the short machine-readable tag.
	AttrCode Attr = iota
	// AttrDescription is the human-readable tag.
	AttrDescription
)

func (a Attr) String() string {
	switch a {
	case AttrCode:
		return "code"
	case AttrDescription:
		return "description"
	default:
		return "attr(" + strconv.Itoa(int(a)) + ")"
	}
}

// Member is one constant's record in a Set: the declared name, the underlying
// integer value, and the optional code/description tags. Presence of a tag is
// tracked separately from its content, so an absent tag is distinguishable
// from an empty one.
type Member struct {
	Name  string
	Value int64

	code    string
	desc    string
	hasCode bool
	hasDesc bool
}

// Code returns the member's code tag and whether one was declared.
func (m Member) Code() (string, bool) { return m.code, m.hasCode }

// Description returns the member's description tag and whether one was declared.
func (m Member) Description() (string, bool) { return m.desc, m.hasDesc }

// Projection is the default record shape produced by Projections: one entry
// per member, description resolved with the name fallback, code nil when the
// member declared no code tag.
type Projection struct {
	Value       int64   `json:"value"`
	Description string  `json:"description"`
	Code        *string `json:"code"`
}

// Set is the immutable metadata table for one enum type: an ordered list of
// members with optional code/description tags, built once via a Builder and
// queried by value at call time. A Set never changes after Build, so all
// methods are safe for unrestricted concurrent use.
type Set[E Integer] struct {
	name    string
	rt      reflect.Type
	members []Member
	byValue map[int64]int
}

// Name returns the name the enum was registered under.
func (s *Set[E]) Name() string { return s.name }

// Len returns the number of registered members.
func (s *Set[E]) Len() int { return len(s.members) }

// Type returns the Go type the set describes.
func (s *Set[E]) Type() reflect.Type { return s.rt }

// Members returns the members in declaration order. The slice is a copy; the
// caller owns it.
func (s *Set[E]) Members() []Member {
	return append([]Member(nil), s.members...)
}

// MemberByValue returns the member declared with the given underlying value.
func (s *Set[E]) MemberByValue(v int64) (Member, bool) {
	i, ok := s.byValue[v]
	if !ok {
		return Member{}, false
	}
	return s.members[i], true
}

// ByDescription scans members in declaration order and returns the first
// whose description tag equals desc. If no tag matches, a second pass matches
// against declared names. Returns def when nothing matches; not finding a
// match is not an error.
func (s *Set[E]) ByDescription(desc string, def E) E {
	if v, ok := s.Resolve(desc); ok {
		return E(v)
	}
	return def
}

// Resolve is the value-level form of ByDescription: it reports the underlying
// value of the first member whose description tag (first pass) or declared
// name (second pass) equals desc.
func (s *Set[E]) Resolve(desc string) (int64, bool) {
	for _, m := range s.members {
		if m.hasDesc && m.desc == desc {
			return m.Value, true
		}
	}
	for _, m := range s.members {
		if m.Name == desc {
			return m.Value, true
		}
	}
	return 0, false
}

// Attr returns the requested tag for the given constant. Absence of the tag
// (or an undefined constant value) reports false, never an error.
func (s *Set[E]) Attr(c E, kind Attr) (string, bool) {
	return s.AttrByValue(int64(c), kind)
}

// AttrByValue is the value-level form of Attr.
func (s *Set[E]) AttrByValue(v int64, kind Attr) (string, bool) {
	m, ok := s.MemberByValue(v)
	if !ok {
		return "", false
	}
	switch kind {
	case AttrCode:
		return m.Code()
	case AttrDescription:
		return m.Description()
	default:
		return "", false
	}
}

// Code returns the constant's code tag, falling back to its declared name.
// For a value that is not a defined member it returns the decimal string of
// the raw value; Code never fails.
func (s *Set[E]) Code(c E) string {
	v := int64(c)
	return s.CodeByValue(v, strconv.FormatInt(v, 10))
}

// Description returns the constant's description tag, falling back to its
// declared name, then to the decimal string for undefined values. Never fails.
func (s *Set[E]) Description(c E) string {
	v := int64(c)
	return s.DescriptionByValue(v, strconv.FormatInt(v, 10))
}

// CodeByValue converts an integer to its member (if defined) and returns the
// member's code with the name fallback; returns def for undefined values.
func (s *Set[E]) CodeByValue(v int64, def string) string {
	m, ok := s.byValue[v]
	if !ok {
		return def
	}
	if s.members[m].hasCode {
		return s.members[m].code
	}
	return s.members[m].Name
}

// DescriptionByValue is symmetric to CodeByValue using the description tag.
func (s *Set[E]) DescriptionByValue(v int64, def string) string {
	m, ok := s.byValue[v]
	if !ok {
		return def
	}
	if s.members[m].hasDesc {
		return s.members[m].desc
	}
	return s.members[m].Name
}

// Min returns the smallest underlying value across all members. It fails with
// *EmptyEnumError when the set has zero members.
func (s *Set[E]) Min() (int64, error) {
	if len(s.members) == 0 {
		return 0, &EmptyEnumError{Name: s.name}
	}
	min := s.members[0].Value
	for _, m := range s.members[1:] {
		if m.Value < min {
			min = m.Value
		}
	}
	return min, nil
}

// Max returns the largest underlying value across all members. It fails with
// *EmptyEnumError when the set has zero members.
func (s *Set[E]) Max() (int64, error) {
	if len(s.members) == 0 {
		return 0, &EmptyEnumError{Name: s.name}
	}
	max := s.members[0].Value
	for _, m := range s.members[1:] {
		if m.Value > max {
			max = m.Value
		}
	}
	return max, nil
}

// Descriptions returns one description (or fallback name) per member, in
// declaration order.
func (s *Set[E]) Descriptions() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		if m.hasDesc {
			out[i] = m.desc
		} else {
			out[i] = m.Name
		}
	}
	return out
}

// Projections builds one Projection per member and returns them sorted by
// value ascending. Declaration order and numeric order can diverge; the sort
// is always applied.
func (s *Set[E]) Projections() []Projection {
	out := make([]Projection, len(s.members))
	for i, m := range s.members {
		p := Projection{Value: m.Value, Description: s.DescriptionByValue(m.Value, m.Name)}
		if m.hasCode {
			code := m.code
			p.Code = &code
		}
		out[i] = p
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Project builds one caller-shaped record per member of s via the build
// function and returns them sorted by value ascending. The description slot
// carries the name fallback; the code slot is nil when the member declared no
// code tag. Each record is constructed fresh and owned by the caller.
func Project[E Integer, T any](s *Set[E], build func(value int64, description string, code *string) T) []T {
	ms := s.Members()
	sort.Slice(ms, func(i, j int) bool { return ms[i].Value < ms[j].Value })
	out := make([]T, len(ms))
	for i, m := range ms {
		var code *string
		if m.hasCode {
			c := m.code
			code = &c
		}
		out[i] = build(m.Value, s.DescriptionByValue(m.Value, m.Name), code)
	}
	return out
}
