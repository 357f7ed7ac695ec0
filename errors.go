package fieldkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeNotInteger    = "not_integer"
	CodeNotPositive   = "not_positive"
	CodeEmpty         = "empty"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeDuplicateKey  = "duplicate_key"
)

// Category groups issue codes into the error taxonomy reported to callers.
type Category int

const (
	CategoryConstraint   Category = iota // Right shape, failed a bound/format/membership rule.
	CategoryTypeMismatch                 // Primitive shape disagrees with the field kind.
	CategoryMissing                      // Value absent where the field is mandatory.
	CategoryUnknown                      // Key not declared by the schema.
	CategoryMalformed                    // Input could not be decoded at all.
)

func (c Category) String() string {
	switch c {
	case CategoryTypeMismatch:
		return "type_mismatch"
	case CategoryMissing:
		return "missing_required"
	case CategoryUnknown:
		return "unknown_key"
	case CategoryMalformed:
		return "malformed"
	default:
		return "constraint_violation"
	}
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /items/2/price).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	// Rule records the rule name that produced this issue.
	Rule string `json:"rule,omitempty"`
	// Params carries structured parameters (e.g., {"min":1, "max":10})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
	// Nested is set when the issue was reported by a nested schema and rebased
	// under its parent field.
	Nested bool  `json:"nested,omitempty"`
	Cause  error `json:"-"`
}

// Category classifies the issue by its code.
func (it Issue) Category() Category {
	switch it.Code {
	case CodeInvalidType:
		return CategoryTypeMismatch
	case CodeRequired:
		return CategoryMissing
	case CodeUnknownKey:
		return CategoryUnknown
	case CodeParseError, CodeDuplicateKey:
		return CategoryMalformed
	default:
		return CategoryConstraint
	}
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue is recorded at path.
func (iss Issues) Has(path string) bool {
	for _, it := range iss {
		if it.Path == path {
			return true
		}
	}
	return false
}

// At returns the issues recorded at path, in order.
func (iss Issues) At(path string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path == path {
			out = append(out, it)
		}
	}
	return out
}

// Paths returns the distinct issue paths in first-seen order.
func (iss Issues) Paths() []string {
	var paths []string
	seen := make(map[string]struct{}, len(iss))
	for _, it := range iss {
		if _, ok := seen[it.Path]; ok {
			continue
		}
		seen[it.Path] = struct{}{}
		paths = append(paths, it.Path)
	}
	return paths
}

// Under rebases every issue path beneath prefix (a JSON Pointer). Issues
// reported at the root collapse onto prefix itself.
func (iss Issues) Under(prefix string) Issues {
	if len(iss) == 0 {
		return nil
	}
	if prefix == "" || prefix == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = prefix
		case p[0] == '/':
			p = prefix + p
		default:
			p = prefix + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError at path.
func IssuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
