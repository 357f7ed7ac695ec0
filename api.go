package fieldkit

import "context"

// Reporter receives the aggregated issues of one validation call and is
// responsible for formatting and transmitting them (for example as an HTTP
// 4xx body). The core never reports on its own; it returns Issues and lets
// the host decide.
type Reporter interface {
	Report(ctx context.Context, iss Issues) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, iss Issues) error

func (f ReporterFunc) Report(ctx context.Context, iss Issues) error { return f(ctx, iss) }

// ---- Validation-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast validation.
// Validators set it from their options; descriptors consume it to stop after
// the first issue of a field.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current validation should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
