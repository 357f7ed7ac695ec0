package rules

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/reoring/fieldkit"
)

// tags evaluates validator/v10 format tags. *validator.Validate is safe for
// concurrent use and holds no registrations of ours.
var tags = validator.New(validator.WithRequiredStructEnabled())

func tagRule(name, tag string) Rule {
	return New(name, fieldkit.CodeInvalidFormat, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if s == "" || tags.Var(s, tag) != nil {
			return Fail
		}
		return Pass
	}, "format", tag)
}

// IsBoolean requires a bool.
func IsBoolean() Rule {
	return New("isBoolean", fieldkit.CodeInvalidType, func(v any) Outcome {
		if _, ok := v.(bool); !ok {
			return Mismatch
		}
		return Pass
	})
}

// Email requires an email address.
func Email() Rule { return tagRule("isEmail", "email") }

// Token requires JWT structure: three dot-separated base64url segments.
func Token() Rule { return tagRule("isJWT", "jwt") }

// StrictToken additionally decodes the token header and claims (signature is
// not verified) and requires an "alg" header.
func StrictToken() Rule {
	p := jwt.NewParser()
	return New("isJWT", fieldkit.CodeInvalidFormat, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		tok, _, err := p.ParseUnverified(s, jwt.MapClaims{})
		if err != nil {
			return Fail
		}
		if alg, _ := tok.Header["alg"].(string); alg == "" {
			return Fail
		}
		return Pass
	}, "format", "jwt", "strict", true)
}

// UUID requires the canonical 8-4-4-4-12 textual form. version 0 accepts any
// version; 1..5 pins it.
func UUID(version int) Rule {
	name := "isUUID"
	var kv []any
	if version > 0 {
		name = "isUUIDv"
		kv = []any{"version", version}
	}
	kv = append(kv, "format", "uuid")
	return New(name, fieldkit.CodeInvalidFormat, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if len(s) != 36 {
			return Fail
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return Fail
		}
		if version > 0 && int(id.Version()) != version {
			return Fail
		}
		return Pass
	}, kv...)
}

// URL requires an absolute URL with a scheme and a host. When schemes is
// non-empty the scheme must be one of them (case-insensitive).
func URL(schemes ...string) Rule {
	allowed := make([]string, len(schemes))
	for i, s := range schemes {
		allowed[i] = strings.ToLower(s)
	}
	kv := []any{"format", "uri"}
	if len(allowed) > 0 {
		kv = append(kv, "schemes", allowed)
	}
	return New("isUrl", fieldkit.CodeInvalidFormat, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if !trimmed(s) || tags.Var(s, "url") != nil {
			return Fail
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Fail
		}
		if len(allowed) > 0 && !slices.Contains(allowed, strings.ToLower(u.Scheme)) {
			return Fail
		}
		return Pass
	}, kv...)
}

// IsDate requires a non-zero time.Time.
func IsDate() Rule {
	return New("isDate", fieldkit.CodeInvalidType, func(v any) Outcome {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return Fail
			}
			return Pass
		case *time.Time:
			if t == nil || t.IsZero() {
				return Fail
			}
			return Pass
		}
		return Mismatch
	}, "format", "date-time")
}

// IsObject requires a JSON object (map[string]any).
func IsObject() Rule {
	return New("isObject", fieldkit.CodeInvalidType, func(v any) Outcome {
		if _, ok := v.(map[string]any); !ok {
			return Mismatch
		}
		return Pass
	})
}
