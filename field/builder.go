package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/rules"
	"github.com/reoring/fieldkit/transform"
)

// ErrInvalidOptions wraps every construction error.
var ErrInvalidOptions = errors.New("field: invalid options")

// Builder assembles descriptors. It carries the rule registry used to
// resolve Options.RuleNames.
type Builder struct {
	registry rules.Registry
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRegistry sets the registry RuleNames resolve against.
func WithRegistry(r rules.Registry) BuilderOption {
	return func(b *Builder) { b.registry = r }
}

// NewBuilder returns a builder using rules.Default() unless overridden.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{registry: rules.Default()}
	for _, o := range opts {
		o(b)
	}
	return b
}

var std = NewBuilder()

// Build assembles a descriptor with the default builder.
func Build(kind Kind, o Options) (Descriptor, error) { return std.Build(kind, o) }

// MustBuild is like Build but panics on error.
func MustBuild(kind Kind, o Options) Descriptor {
	d, err := Build(kind, o)
	if err != nil {
		panic(err)
	}
	return d
}

// Build checks o against kind and assembles the descriptor.
func (b *Builder) Build(kind Kind, o Options) (Descriptor, error) {
	if err := checkOptions(kind, o); err != nil {
		return Descriptor{}, err
	}

	rs := kindRules(kind, o)
	rs = append(rs, o.Rules...)
	var errs []error
	for _, name := range o.RuleNames {
		r, err := b.registry.Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rs = append(rs, r)
	}
	if len(o.Messages) > 0 {
		used := make(map[string]bool, len(o.Messages))
		for i, r := range rs {
			if tpl, ok := o.Messages[r.Name()]; ok {
				rs[i] = r.WithMessage(tpl)
				used[r.Name()] = true
			}
		}
		for name := range o.Messages {
			if !used[name] {
				errs = append(errs, fmt.Errorf("message override for rule %q not on %s field", name, kind))
			}
		}
	}
	if len(errs) > 0 {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}

	doc := o.Doc
	d := Descriptor{
		kind:      kind,
		optional:  o.Optional,
		nullable:  o.Nullable,
		repeated:  o.Repeated,
		transform: kindTransform(kind, o),
		rules:     rs,
		doc:       doc,
		object:    o.Schema,
	}
	if kind == KindEnum {
		d.enumName = o.EnumName
		if d.enumName == "" {
			d.enumName = UnknownEnumName
		}
	}
	if o.Default != nil {
		d.def, d.hasDefault = o.Default, true
		if kind != KindObject {
			if _, iss := d.Validate(context.Background(), Env{Path: fieldkit.Root()}, o.Default); len(iss) > 0 {
				return Descriptor{}, fmt.Errorf("%w: default %v: %w", ErrInvalidOptions, o.Default, iss)
			}
		}
	}
	return d, nil
}

func checkOptions(kind Kind, o Options) error {
	var errs []error
	bad := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	if !kind.valid() {
		bad("unknown kind %d", kind)
	}
	if kind != KindNumber && (o.Int || o.Min != nil || o.Max != nil || o.Positive) {
		bad("number options on %s field", kind)
	}
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		bad("min %v greater than max %v", *o.Min, *o.Max)
	}
	if kind != KindString && (o.MinLength != nil || o.MaxLength != nil) {
		bad("length options on %s field", kind)
	}
	if kind != KindString && kind != KindEmail && (o.ToLower || o.ToUpper || o.Trim) {
		bad("string transforms on %s field", kind)
	}
	if o.ToLower && o.ToUpper {
		bad("ToLower and ToUpper are exclusive")
	}
	if o.MinLength != nil && *o.MinLength < 0 {
		bad("negative MinLength %d", *o.MinLength)
	}
	if o.MaxLength != nil && *o.MaxLength < 0 {
		bad("negative MaxLength %d", *o.MaxLength)
	}
	if o.MinLength != nil && o.MaxLength != nil && *o.MinLength > *o.MaxLength {
		bad("MinLength %d greater than MaxLength %d", *o.MinLength, *o.MaxLength)
	}
	if kind == KindEnum {
		if len(o.Values) == 0 {
			bad("enum without values")
		}
		seen := make(map[string]bool, len(o.Values))
		for _, v := range o.Values {
			if seen[v] {
				bad("duplicate enum value %q", v)
			}
			seen[v] = true
		}
	} else if len(o.Values) > 0 || o.EnumName != "" {
		bad("enum options on %s field", kind)
	}
	if kind == KindUUID {
		if o.Version < 0 || o.Version > 5 {
			bad("uuid version %d out of range 1..5", o.Version)
		}
	} else if o.Version != 0 {
		bad("uuid version on %s field", kind)
	}
	if kind != KindURL && len(o.Schemes) > 0 {
		bad("schemes on %s field", kind)
	}
	if kind != KindToken && o.Strict {
		bad("strict token on %s field", kind)
	}
	if kind == KindObject {
		if o.Schema == nil {
			bad("object field without schema")
		}
	} else if o.Schema != nil {
		bad("schema on %s field", kind)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
}

// kindTransform mirrors the implicit conversions a JSON or query-string
// input needs before the kind's rules can apply.
func kindTransform(kind Kind, o Options) transform.Func {
	var fns []transform.Func
	switch kind {
	case KindNumber:
		fns = append(fns, transform.ToNumber)
	case KindBoolean:
		fns = append(fns, transform.CoerceBoolean)
	case KindDate:
		fns = append(fns, transform.ToTime)
	}
	if o.Trim {
		fns = append(fns, transform.TrimCollapse)
	}
	if o.ToLower {
		fns = append(fns, transform.ToLower)
	}
	if o.ToUpper {
		fns = append(fns, transform.ToUpper)
	}
	fns = append(fns, o.Transform)
	return transform.Chain(fns...)
}

func kindRules(kind Kind, o Options) []rules.Rule {
	var rs []rules.Rule
	switch kind {
	case KindNumber:
		if o.Int {
			rs = append(rs, rules.Integer())
		} else {
			rs = append(rs, rules.IsNumber())
		}
		if o.Min != nil {
			rs = append(rs, rules.Min(*o.Min))
		}
		if o.Max != nil {
			rs = append(rs, rules.Max(*o.Max))
		}
		if o.Positive {
			rs = append(rs, rules.Positive())
		}
	case KindString:
		rs = append(rs, rules.IsString(), rules.NotEmpty())
		if o.MinLength != nil {
			rs = append(rs, rules.MinLength(*o.MinLength))
		}
		if o.MaxLength != nil {
			rs = append(rs, rules.MaxLength(*o.MaxLength))
		}
	case KindBoolean:
		rs = append(rs, rules.IsBoolean())
	case KindEmail:
		rs = append(rs, rules.Email())
	case KindToken:
		if o.Strict {
			rs = append(rs, rules.StrictToken())
		} else {
			rs = append(rs, rules.Token())
		}
	case KindEnum:
		rs = append(rs, rules.Enum(o.Values...))
	case KindUUID:
		rs = append(rs, rules.UUID(o.Version))
	case KindURL:
		rs = append(rs, rules.URL(o.Schemes...))
	case KindDate:
		rs = append(rs, rules.IsDate())
	case KindObject:
		rs = append(rs, rules.IsObject())
	}
	return rs
}
