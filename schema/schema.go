// Package schema assembles field descriptors into named tables and validates
// dynamic objects against them.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/field"
	"github.com/reoring/fieldkit/i18n"
	"github.com/reoring/fieldkit/jsonschema"
)

// ErrInvalidSchema wraps every schema construction error.
var ErrInvalidSchema = errors.New("schema: invalid schema")

type entry struct {
	name string
	desc field.Descriptor
}

// Schema is an immutable, ordered name -> descriptor table.
type Schema struct {
	name        string
	description string
	fields      []entry
	index       map[string]int
	unknown     fieldkit.UnknownPolicy
}

// Builder collects fields. It is not safe for concurrent use; the Schema it
// builds is.
type Builder struct {
	name        string
	description string
	fields      []entry
	unknown     fieldkit.UnknownPolicy
	errs        []error
}

// New starts a schema named name. Unknown keys are stripped by default.
func New(name string) *Builder {
	return &Builder{name: name, unknown: fieldkit.UnknownStrip}
}

// Field appends a field. Declaration order is kept for validation and docs.
func (b *Builder) Field(name string, d field.Descriptor) *Builder {
	if d.Kind() == 0 {
		b.errs = append(b.errs, fmt.Errorf("field %q: zero descriptor", name))
	}
	b.fields = append(b.fields, entry{name: name, desc: d})
	return b
}

// Extend copies every field of s, in order. Later Field calls may not
// redeclare them.
func (b *Builder) Extend(s *Schema) *Builder {
	b.fields = append(b.fields, s.fields...)
	return b
}

// Description documents the schema.
func (b *Builder) Description(text string) *Builder {
	b.description = text
	return b
}

// UnknownStrict rejects undeclared keys with CodeUnknownKey.
func (b *Builder) UnknownStrict() *Builder {
	b.unknown = fieldkit.UnknownStrict
	return b
}

// UnknownStrip drops undeclared keys from the output (default).
func (b *Builder) UnknownStrip() *Builder {
	b.unknown = fieldkit.UnknownStrip
	return b
}

// Build validates the declaration and returns the schema.
func (b *Builder) Build() (*Schema, error) {
	errs := append([]error(nil), b.errs...)
	if b.name == "" {
		errs = append(errs, errors.New("empty schema name"))
	}
	index := make(map[string]int, len(b.fields))
	for i, e := range b.fields {
		if e.name == "" {
			errs = append(errs, fmt.Errorf("field #%d: empty name", i))
			continue
		}
		if _, dup := index[e.name]; dup {
			errs = append(errs, fmt.Errorf("field %q declared twice", e.name))
			continue
		}
		index[e.name] = i
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchema, b.name, errors.Join(errs...))
	}
	return &Schema{
		name:        b.name,
		description: b.description,
		fields:      append([]entry(nil), b.fields...),
		index:       index,
		unknown:     b.unknown,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string                    { return s.name }
func (s *Schema) Unknown() fieldkit.UnknownPolicy { return s.unknown }

// Fields lists field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	for i, e := range s.fields {
		out[i] = e.name
	}
	return out
}

// Field looks a descriptor up by name.
func (s *Schema) Field(name string) (field.Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return field.Descriptor{}, false
	}
	return s.fields[i].desc, true
}

// ValidateObject validates every declared field of in (all fields are
// attempted) and applies the unknown-key policy. The returned map holds the
// transformed values of present or defaulted fields. env.Path prefixes every
// issue path.
func (s *Schema) ValidateObject(ctx context.Context, env field.Env, in map[string]any) (map[string]any, fieldkit.Issues) {
	out := make(map[string]any, len(s.fields))
	var all fieldkit.Issues
	for _, e := range s.fields {
		raw, ok := in[e.name]
		if !ok {
			raw = fieldkit.Missing
		}
		v, iss := e.desc.Validate(ctx, field.Env{Path: env.Path.Field(e.name), Messages: env.Messages}, raw)
		all = append(all, iss...)
		if !fieldkit.IsMissing(v) {
			out[e.name] = v
		}
	}
	if s.unknown == fieldkit.UnknownStrict {
		all = append(all, s.unknownKeys(env, in)...)
	}
	return out, all
}

func (s *Schema) unknownKeys(env field.Env, in map[string]any) fieldkit.Issues {
	var extra []string
	for k := range in {
		if _, ok := s.index[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	var t i18n.Translator = env.Messages
	if t == nil {
		t = i18n.Default()
	}
	iss := make(fieldkit.Issues, 0, len(extra))
	for _, k := range extra {
		p := env.Path.Field(k)
		it := p.Issue(fieldkit.CodeUnknownKey, t.Message("unknownKey", map[string]any{"property": k}))
		it.Rule = "unknownKey"
		iss = append(iss, it)
	}
	return iss
}

// JSONSchema projects the table as an object schema. Hidden fields are left
// out; non-optional fields are listed as required.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.fields))
	var required []string
	for _, e := range s.fields {
		if e.desc.Documentation().Hidden {
			continue
		}
		props[e.name] = e.desc.JSONSchema()
		if _, hasDefault := e.desc.Default(); !e.desc.IsOptional() && !hasDefault {
			required = append(required, e.name)
		}
	}
	out := jsonschema.Object(s.name, props, required...)
	out.Description = s.description
	if s.unknown == fieldkit.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out
}
