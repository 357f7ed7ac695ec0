package field

import (
	"math"

	"github.com/reoring/fieldkit/jsonschema"
	"github.com/reoring/fieldkit/rules"
)

// JSONSchema projects the descriptor's documentation and rules. Repeated
// fields become arrays whose items carry the per-element constraints.
func (d Descriptor) JSONSchema() *jsonschema.Schema {
	item := d.itemSchema()
	out := item
	if d.repeated {
		out = jsonschema.ArrayOf(item)
	}
	if d.doc.Title != "" {
		out.Title = d.doc.Title
	}
	if d.doc.Description != "" {
		out.Description = d.doc.Description
	}
	if d.doc.Example != nil {
		out.Example = d.doc.Example
	}
	if d.doc.Deprecated {
		out.Deprecated = true
	}
	out.Nullable = d.nullable
	if d.hasDefault {
		out.Default = d.def
	}
	return out
}

func (d Descriptor) itemSchema() *jsonschema.Schema {
	var s *jsonschema.Schema
	switch d.kind {
	case KindNumber:
		s = &jsonschema.Schema{Type: "number"}
	case KindBoolean:
		s = &jsonschema.Schema{Type: "boolean"}
	case KindObject:
		if d.object != nil {
			if os := d.object.JSONSchema(); os != nil {
				cp := *os
				s = &cp
			}
		}
		if s == nil {
			s = &jsonschema.Schema{Type: "object"}
		}
	case KindEnum:
		s = &jsonschema.Schema{Type: "string", EnumName: d.enumName}
	default:
		s = &jsonschema.Schema{Type: "string"}
	}
	for _, r := range d.rules {
		applyRule(s, r)
	}
	if d.doc.Type != "" {
		s.Type = d.doc.Type
	}
	if d.doc.Format != "" {
		s.Format = d.doc.Format
	}
	return s
}

func applyRule(s *jsonschema.Schema, r rules.Rule) {
	switch r.Name() {
	case "isInt", "isMs":
		s.Type = "integer"
		if r.Name() == "isMs" {
			s.Minimum = jsonschema.Ptr(0.0)
		}
	case "min":
		if f, ok := numParam(r, "min"); ok {
			s.Minimum = jsonschema.Ptr(f)
		}
	case "max":
		if f, ok := numParam(r, "max"); ok {
			s.Maximum = jsonschema.Ptr(f)
		}
	case "isPositive":
		s.ExclusiveMinimum = jsonschema.Ptr(0.0)
	case "minLength":
		if f, ok := numParam(r, "min"); ok && f >= 0 && f == math.Trunc(f) {
			s.MinLength = jsonschema.Ptr(int(f))
		}
	case "maxLength":
		if f, ok := numParam(r, "max"); ok && f >= 0 && f == math.Trunc(f) {
			s.MaxLength = jsonschema.Ptr(int(f))
		}
	case "isEnum":
		vals := rules.EnumValues(r)
		s.Enum = make([]any, len(vals))
		for i, v := range vals {
			s.Enum[i] = v
		}
	case "isEmail":
		s.Format = "email"
	case "isJWT":
		s.Format = "jwt"
	case "isUUID", "isUUIDv":
		s.Format = "uuid"
	case "isUrl":
		s.Format = "uri"
	case "isDate":
		s.Format = "date-time"
	default:
		if p, ok := r.Param("pattern"); ok {
			s.Pattern, _ = p.(string)
		}
	}
}

// numParam reads a numeric rule param. Custom rules may reuse a built-in
// name with any param type; non-numbers are skipped.
func numParam(r rules.Rule, key string) (float64, bool) {
	v, ok := r.Param(key)
	if !ok {
		return 0, false
	}
	return rules.AsFloat(v)
}
