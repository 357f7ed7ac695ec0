// Package middleware validates HTTP request input against a schema before
// the handler runs and hands failures to a fieldkit.Reporter.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/codec"
	"github.com/reoring/fieldkit/i18n"
	"github.com/reoring/fieldkit/report"
	"github.com/reoring/fieldkit/schema"
)

// DefaultMaxBodyBytes caps request bodies read by JSON.
const DefaultMaxBodyBytes int64 = 1 << 20

// LangHeader and LangQuery select the message language ahead of
// Accept-Language.
const (
	LangHeader = "x-custom-lang"
	LangQuery  = "lang"
)

// ctxKeyValues is a typed context key for validated values.
type ctxKeyValues struct{}

// ContextWithValues attaches validated values to the context.
func ContextWithValues(ctx context.Context, v map[string]any) context.Context {
	return context.WithValue(ctx, ctxKeyValues{}, v)
}

// ValuesFromContext retrieves the values stored by a validating middleware.
func ValuesFromContext(ctx context.Context) (map[string]any, bool) {
	v, ok := ctx.Value(ctxKeyValues{}).(map[string]any)
	return v, ok
}

// ReporterFactory builds the reporter for one failed request.
type ReporterFactory func(w http.ResponseWriter, r *http.Request) fieldkit.Reporter

// Config is shared by the middlewares of this package and the framework
// adapters.
type Config struct {
	Validator    *schema.Validator
	Bundle       *i18n.Bundle // nil keeps the validator's catalog
	Reporter     ReporterFactory
	MaxBodyBytes int64
}

// Option configures Config.
type Option func(*Config)

func WithValidator(v *schema.Validator) Option { return func(c *Config) { c.Validator = v } }
func WithBundle(b *i18n.Bundle) Option         { return func(c *Config) { c.Bundle = b } }
func WithReporter(f ReporterFactory) Option    { return func(c *Config) { c.Reporter = f } }
func WithMaxBodyBytes(n int64) Option          { return func(c *Config) { c.MaxBodyBytes = n } }

// NewConfig applies opts over the defaults: a plain validator, the HTTP
// error body reporter and DefaultMaxBodyBytes.
func NewConfig(opts ...Option) Config {
	c := Config{
		Validator:    schema.NewValidator(),
		MaxBodyBytes: DefaultMaxBodyBytes,
		Reporter: func(w http.ResponseWriter, r *http.Request) fieldkit.Reporter {
			return report.NewHTTP(w, r)
		},
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Language returns the client's language preference: the x-custom-lang
// header, then the lang query parameter, then Accept-Language.
func Language(r *http.Request) []string {
	return []string{r.Header.Get(LangHeader), r.URL.Query().Get(LangQuery), r.Header.Get("Accept-Language")}
}

// QueryValues flattens a query: single values become strings, repeated keys
// []string.
func QueryValues(q url.Values) map[string]any {
	out := make(map[string]any, len(q))
	for k, vs := range q {
		switch len(vs) {
		case 0:
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

// ErrBodyTooLarge is returned when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("middleware: request body too large")

// ReadJSON reads and decodes the request body, at most limit bytes.
func ReadJSON(r *http.Request, limit int64) (any, error) {
	if r.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("middleware: read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	if len(data) == 0 {
		return nil, nil
	}
	return codec.DecodeJSON(data)
}

// Validate runs s against doc with the request's language. Both the
// net/http middlewares and framework adapters use it.
func (c Config) Validate(r *http.Request, s *schema.Schema, doc any) (map[string]any, error) {
	v := c.Validator
	if c.Bundle != nil {
		v = v.With(schema.WithCatalog(c.Bundle.Lookup(Language(r)...)))
	}
	return v.ValidateAny(r.Context(), s, doc)
}

// Query validates the URL query against s.
func Query(s *schema.Schema, opts ...Option) func(http.Handler) http.Handler {
	c := NewConfig(opts...)
	return c.wrap(s, func(r *http.Request) (any, error) { return QueryValues(r.URL.Query()), nil })
}

// JSON validates the JSON request body against s.
func JSON(s *schema.Schema, opts ...Option) func(http.Handler) http.Handler {
	c := NewConfig(opts...)
	return c.wrap(s, func(r *http.Request) (any, error) { return ReadJSON(r, c.MaxBodyBytes) })
}

func (c Config) wrap(s *schema.Schema, read func(*http.Request) (any, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doc, err := read(r)
			if err == nil {
				var out map[string]any
				out, err = c.Validate(r, s, doc)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(ContextWithValues(r.Context(), out)))
					return
				}
			}
			c.fail(w, r, err)
		})
	}
}

func (c Config) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrBodyTooLarge) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	iss := fieldkit.IssuesFromErr("/", err)
	if rerr := c.Reporter(w, r).Report(r.Context(), iss); rerr != nil {
		http.Error(w, rerr.Error(), http.StatusInternalServerError)
	}
}

// Fail reports err for r. Framework adapters call it after Validate.
func (c Config) Fail(w http.ResponseWriter, r *http.Request, err error) { c.fail(w, r, err) }
