package rules

import (
	"maps"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/i18n"
)

// Outcome is the result of evaluating a rule against one value.
type Outcome uint8

const (
	// Pass means the value satisfies the rule.
	Pass Outcome = iota
	// Fail means the value has the right shape but violates the rule.
	Fail
	// Mismatch means the rule could not be attempted because the value has
	// the wrong primitive type.
	Mismatch
)

func (o Outcome) String() string {
	switch o {
	case Fail:
		return "fail"
	case Mismatch:
		return "mismatch"
	default:
		return "pass"
	}
}

// Check is the predicate behind a Rule. It must not mutate v.
type Check func(v any) Outcome

// Rule is a named predicate with an issue code, structured params and an
// optional message template override. Rules are values; the With* methods
// return modified copies.
type Rule struct {
	name    string
	code    string
	params  map[string]any
	message string
	check   Check
}

// New builds a rule. name doubles as the message catalog key; kv pairs become
// params (for messages and schema export).
func New(name, code string, check Check, kv ...any) Rule {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				params[k] = kv[i+1]
			}
		}
	}
	return Rule{name: name, code: code, params: params, check: check}
}

func (r Rule) Name() string { return r.name }
func (r Rule) Code() string { return r.code }

// Param returns a single param.
func (r Rule) Param(key string) (any, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Params returns a copy of the rule params.
func (r Rule) Params() map[string]any { return maps.Clone(r.params) }

// WithMessage returns a copy of r whose failures render tpl instead of the
// catalog template.
func (r Rule) WithMessage(tpl string) Rule {
	r.message = tpl
	return r
}

// Check evaluates the predicate.
func (r Rule) Check(v any) Outcome {
	if r.check == nil {
		return Pass
	}
	return r.check(v)
}

// Ctx carries where a value sits for message formatting.
type Ctx struct {
	Path     fieldkit.PathRef // path of the field
	Each     bool             // value is an element of a repeated field
	Index    int              // element index when Each is set
	Messages i18n.Translator  // nil means i18n.Default()
}

// Target returns the path the issue is reported at.
func (c Ctx) Target() fieldkit.PathRef {
	if c.Each {
		return c.Path.Index(c.Index)
	}
	return c.Path
}

// Eval runs the rule and converts a non-passing outcome into an Issue.
func (r Rule) Eval(c Ctx, v any) (Outcome, *fieldkit.Issue) {
	out := r.Check(v)
	if out == Pass {
		return Pass, nil
	}
	it := r.issue(c, out)
	return out, &it
}

func (r Rule) issue(c Ctx, out Outcome) fieldkit.Issue {
	code, key := r.code, r.name
	if out == Mismatch {
		code = fieldkit.CodeInvalidType
		// Type rules describe the expected type themselves.
		if r.code != fieldkit.CodeInvalidType {
			key = "invalidType"
		}
	}
	msgParams := make(map[string]any, len(r.params)+2)
	maps.Copy(msgParams, r.params)
	msgParams["property"] = c.Path.Name()
	msgParams["each"] = c.Each

	var t i18n.Translator = c.Messages
	if t == nil {
		t = i18n.Default()
	}
	var msg string
	if r.message != "" && out == Fail {
		msg = i18n.Render(t, r.message, msgParams)
	} else {
		msg = t.Message(key, msgParams)
	}
	return fieldkit.Issue{
		Path:    c.Target().Pointer(),
		Code:    code,
		Rule:    r.name,
		Message: msg,
		Params:  r.Params(),
	}
}
