package schema

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/field"
	"github.com/reoring/fieldkit/i18n"
)

// Validator is the validation entry point. It is immutable and safe for
// concurrent use.
type Validator struct {
	messages i18n.Translator
	log      zerolog.Logger
	failFast bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog sets the message translator (default i18n.Default()).
func WithCatalog(t i18n.Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.messages = t
		}
	}
}

// WithLogger logs a debug summary of every validation.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) { v.log = l }
}

// WithFailFast stops each field at its first issue. Every field is still
// attempted.
func WithFailFast(on bool) Option {
	return func(v *Validator) { v.failFast = on }
}

// NewValidator builds a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{messages: i18n.Default(), log: zerolog.Nop()}
	for _, o := range opts {
		o(v)
	}
	return v
}

// With returns a copy of v with opts applied on top.
func (v *Validator) With(opts ...Option) *Validator {
	cp := *v
	for _, o := range opts {
		o(&cp)
	}
	return &cp
}

// Validate checks input against s. On failure the error is fieldkit.Issues
// and the returned map still holds every value that was produced.
func (v *Validator) Validate(ctx context.Context, s *Schema, input map[string]any) (map[string]any, error) {
	if v.failFast {
		ctx = fieldkit.WithFailFast(ctx, true)
	}
	if input == nil {
		input = map[string]any{}
	}
	out, iss := s.ValidateObject(ctx, field.Env{Path: fieldkit.Root(), Messages: v.messages}, input)
	ev := v.log.Debug().Str("schema", s.Name()).Int("fields", len(s.fields)).Int("issues", len(iss))
	if len(iss) > 0 {
		ev = ev.Strs("paths", iss.Paths())
	}
	ev.Msg("validated")
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// ValidateAny accepts any decoded document; anything but an object yields a
// single invalid_type issue at the root.
func (v *Validator) ValidateAny(ctx context.Context, s *Schema, doc any) (map[string]any, error) {
	m, ok := doc.(map[string]any)
	if !ok && doc != nil {
		msg := v.messages.Message("isObject", map[string]any{"property": s.Name()})
		return nil, fieldkit.Issues{fieldkit.Root().Issue(fieldkit.CodeInvalidType, msg)}
	}
	return v.Validate(ctx, s, m)
}

// Report hands the issues inside err to r. Errors that carry no issues are
// returned unchanged; a nil err is a no-op.
func (v *Validator) Report(ctx context.Context, r fieldkit.Reporter, err error) error {
	if err == nil {
		return nil
	}
	iss, ok := fieldkit.AsIssues(err)
	if !ok {
		return err
	}
	return r.Report(ctx, iss)
}
