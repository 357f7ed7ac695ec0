package report

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/reoring/fieldkit"
)

// HTTP writes issues as an ErrorBody JSON response. Build one per request.
type HTTP struct {
	w       http.ResponseWriter
	r       *http.Request
	status  int
	message string
	now     func() time.Time
}

// HTTPOption configures an HTTP reporter.
type HTTPOption func(*HTTP)

// WithStatus overrides the response status (default 400).
func WithStatus(code int) HTTPOption { return func(h *HTTP) { h.status = code } }

// WithMessage overrides the top-level message.
func WithMessage(msg string) HTTPOption { return func(h *HTTP) { h.message = msg } }

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) HTTPOption { return func(h *HTTP) { h.now = now } }

// NewHTTP returns a reporter writing to w. r (optional) fills path and method.
func NewHTTP(w http.ResponseWriter, r *http.Request, opts ...HTTPOption) *HTTP {
	h := &HTTP{w: w, r: r, status: http.StatusBadRequest, now: time.Now}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Body builds the body Report would write.
func (h *HTTP) Body(iss fieldkit.Issues) ErrorBody {
	b := NewErrorBody(iss, h.status, h.message, h.now())
	if h.r != nil {
		b.Path = h.r.URL.Path
		b.Method = h.r.Method
	}
	return b
}

// Report writes the response.
func (h *HTTP) Report(_ context.Context, iss fieldkit.Issues) error {
	return WriteJSON(h.w, h.status, h.Body(iss))
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(append(b, '\n'))
	return err
}
