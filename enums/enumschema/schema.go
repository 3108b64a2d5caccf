// Package enumschema projects registered enums into JSON Schema fragments.
// Member codes become the schema's enum array and member descriptions become
// the paired enumNames extension, so a client rendering the schema can show
// human-readable labels while submitting machine codes.
package enumschema

import (
	"github.com/invopop/jsonschema"

	"github.com/celerik/go-baseline/enums"
)

// Option configures schema generation.
type Option func(*config)

type config struct {
	byValue     bool
	description string
}

// ByValue emits the members' integer values instead of their codes. The
// enumNames pairing is unchanged.
func ByValue() Option {
	return func(c *config) { c.byValue = true }
}

// WithDescription sets the generated schema's description.
func WithDescription(desc string) Option {
	return func(c *config) { c.description = desc }
}

// Schema builds a JSON Schema fragment for the set: type string with one enum
// entry per member (the member's code, with the declared-name fallback) and a
// matching enumNames array of descriptions. Member order is declaration order.
func Schema[E enums.Integer](s *enums.Set[E], opts ...Option) *jsonschema.Schema {
	return fromView(s, opts...)
}

// SchemaOf is the dynamic form of Schema: it resolves sample's type through
// the package registry and fails with *enums.InvalidEnumTypeError when the
// type was never registered.
func SchemaOf(sample any, opts ...Option) (*jsonschema.Schema, error) {
	v, err := enums.ViewOf(sample)
	if err != nil {
		return nil, err
	}
	return fromView(v, opts...), nil
}

func fromView(v enums.View, opts ...Option) *jsonschema.Schema {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	members := v.Members()
	values := make([]any, 0, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		if cfg.byValue {
			values = append(values, m.Value)
		} else {
			values = append(values, v.CodeByValue(m.Value, m.Name))
		}
		names = append(names, v.DescriptionByValue(m.Value, m.Name))
	}

	typ := "string"
	if cfg.byValue {
		typ = "integer"
	}
	sch := &jsonschema.Schema{
		Type:        typ,
		Title:       v.Name(),
		Description: cfg.description,
		Enum:        values,
		Extras:      map[string]any{"enumNames": names},
	}
	return sch
}

// Field merges an enum schema into obj as a named object property,
// initializing obj's property map when needed and appending to its required
// list when required is set.
func Field(obj *jsonschema.Schema, name string, sch *jsonschema.Schema, required bool) {
	if obj.Type == "" {
		obj.Type = "object"
	}
	if obj.Properties == nil {
		obj.Properties = jsonschema.NewProperties()
	}
	obj.Properties.Set(name, sch)
	if required {
		obj.Required = append(obj.Required, name)
	}
}
