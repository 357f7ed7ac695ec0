// Package report turns validation issues into the shapes hosts transmit: an
// HTTP error body and structured log records.
package report

import (
	"net/http"
	"strings"
	"time"

	"github.com/reoring/fieldkit"
)

// ErrorCodeValidation is the errorCode of bodies built from issues.
const ErrorCodeValidation = "VALIDATION_FAILED"

// ErrorDetail groups the messages reported for one property.
type ErrorDetail struct {
	Property string   `json:"property"`
	Messages []string `json:"messages"`
}

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Timestamp  string        `json:"timestamp"`
	StatusCode int           `json:"statusCode"`
	Error      string        `json:"error"`
	ErrorCode  string        `json:"errorCode,omitempty"`
	Message    string        `json:"message"`
	Details    []ErrorDetail `json:"details,omitempty"`
	Path       string        `json:"path,omitempty"`
	Method     string        `json:"method,omitempty"`
}

// BaseResponse is the envelope of responses that carry no data.
type BaseResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBaseResponse stamps a BaseResponse with now.
func NewBaseResponse(success bool, message string, now time.Time) BaseResponse {
	return BaseResponse{Success: success, Message: message, Timestamp: now}
}

// Property renders a JSON Pointer as a dotted property path
// ("/addresses/1/city" -> "addresses.1.city"; the root is "").
func Property(pointer string) string {
	p := strings.TrimPrefix(pointer, "/")
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
	}
	return strings.Join(parts, ".")
}

// Details groups issue messages by property, in first-seen order.
func Details(iss fieldkit.Issues) []ErrorDetail {
	if len(iss) == 0 {
		return nil
	}
	out := make([]ErrorDetail, 0, len(iss))
	idx := make(map[string]int, len(iss))
	for _, it := range iss {
		prop := Property(it.Path)
		i, ok := idx[prop]
		if !ok {
			i = len(out)
			idx[prop] = i
			out = append(out, ErrorDetail{Property: prop})
		}
		out[i].Messages = append(out[i].Messages, it.Message)
	}
	return out
}

// NewErrorBody builds the body for iss. message defaults to "Validation
// failed" when empty.
func NewErrorBody(iss fieldkit.Issues, status int, message string, now time.Time) ErrorBody {
	if message == "" {
		message = "Validation failed"
	}
	return ErrorBody{
		Timestamp:  now.UTC().Format(time.RFC3339),
		StatusCode: status,
		Error:      http.StatusText(status),
		ErrorCode:  ErrorCodeValidation,
		Message:    message,
		Details:    Details(iss),
	}
}
