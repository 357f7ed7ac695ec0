package field

import (
	"context"
	"reflect"
	"slices"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/i18n"
	"github.com/reoring/fieldkit/rules"
	"github.com/reoring/fieldkit/transform"
)

// Descriptor is an immutable field declaration. The zero value is not
// usable; build descriptors with Build or the kind helpers.
type Descriptor struct {
	kind       Kind
	optional   bool
	nullable   bool
	repeated   bool
	def        any
	hasDefault bool
	transform  transform.Func
	rules      []rules.Rule
	doc        Doc
	enumName   string
	object     ObjectSchema
}

func (d Descriptor) Kind() Kind         { return d.kind }
func (d Descriptor) IsOptional() bool   { return d.optional }
func (d Descriptor) IsNullable() bool   { return d.nullable }
func (d Descriptor) IsRepeated() bool   { return d.repeated }
func (d Descriptor) Documentation() Doc { return d.doc }

// EnumName is the documentation name of an enum field ("" for other kinds).
func (d Descriptor) EnumName() string { return d.enumName }

// Default returns the default value, if any.
func (d Descriptor) Default() (any, bool) { return d.def, d.hasDefault }

// Rules returns a copy of the rule sequence.
func (d Descriptor) Rules() []rules.Rule { return slices.Clone(d.rules) }

// Object returns the nested schema of an object field.
func (d Descriptor) Object() ObjectSchema { return d.object }

// Optional returns a copy of d that passes absent or null input without
// running any rule. Every other input is validated exactly as d would.
func Optional(d Descriptor) Descriptor {
	d.optional = true
	return d
}

// Validate runs presence, default, repeated coercion, transform and rules
// against v and returns the transformed value. v is fieldkit.Missing when the
// key was absent.
func (d Descriptor) Validate(ctx context.Context, env Env, v any) (any, fieldkit.Issues) {
	if fieldkit.IsMissing(v) && d.hasDefault {
		v = d.def
	}
	if fieldkit.IsAbsent(v) {
		switch {
		case d.optional:
			return v, nil
		case v == nil && d.nullable:
			return nil, nil
		}
		return v, fieldkit.Issues{d.required(env)}
	}

	if d.repeated {
		v = asSequence(v)
	}
	if d.transform != nil {
		v = d.transform(v)
	}

	if !d.repeated {
		return d.check(ctx, env, rules.Ctx{Path: env.Path, Messages: env.Messages}, v)
	}
	elems, _ := v.([]any)
	out := make([]any, len(elems))
	var all fieldkit.Issues
	for i, e := range elems {
		ev, iss := d.check(ctx, env, rules.Ctx{Path: env.Path, Each: true, Index: i, Messages: env.Messages}, e)
		out[i] = ev
		all = append(all, iss...)
	}
	return out, all
}

func (d Descriptor) required(env Env) fieldkit.Issue {
	var t i18n.Translator = env.Messages
	if t == nil {
		t = i18n.Default()
	}
	msg := t.Message("required", map[string]any{"property": env.Path.Name()})
	return fieldkit.Issue{Path: env.Path.Pointer(), Code: fieldkit.CodeRequired, Rule: "required", Message: msg}
}

// check evaluates the rule sequence on one value (a scalar or one element).
func (d Descriptor) check(ctx context.Context, env Env, rc rules.Ctx, v any) (any, fieldkit.Issues) {
	var iss fieldkit.Issues
	failFast := fieldkit.IsFailFast(ctx)
	for _, r := range d.rules {
		out, it := r.Eval(rc, v)
		if it == nil {
			continue
		}
		iss = append(iss, *it)
		if out == rules.Mismatch || failFast {
			return v, iss
		}
	}
	if len(iss) > 0 || d.kind != KindObject || d.object == nil {
		return v, iss
	}
	m, _ := v.(map[string]any)
	nested, niss := d.object.ValidateObject(ctx, Env{Path: rc.Target(), Messages: env.Messages}, m)
	for i := range niss {
		niss[i].Nested = true
	}
	return nested, niss
}

// asSequence turns v into []any, wrapping non-sequences as one element.
func asSequence(v any) any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case string, []byte:
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}
