package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/reoring/fieldkit"
)

// IsString requires a string.
func IsString() Rule {
	return New("isString", fieldkit.CodeInvalidType, func(v any) Outcome {
		if _, ok := v.(string); !ok {
			return Mismatch
		}
		return Pass
	})
}

// NotEmpty rejects the empty string (whitespace-only strings are not empty).
func NotEmpty() Rule {
	return New("isNotEmpty", fieldkit.CodeEmpty, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if s == "" {
			return Fail
		}
		return Pass
	})
}

// MinLength requires at least n characters (runes).
func MinLength(n int) Rule {
	return New("minLength", fieldkit.CodeTooShort, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if utf8.RuneCountInString(s) < n {
			return Fail
		}
		return Pass
	}, "min", n)
}

// MaxLength allows at most n characters (runes).
func MaxLength(n int) Rule {
	return New("maxLength", fieldkit.CodeTooLong, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if utf8.RuneCountInString(s) > n {
			return Fail
		}
		return Pass
	}, "max", n)
}

// Matches requires the string to match re. name is the message key.
func Matches(name string, re *regexp.Regexp) Rule {
	return New(name, fieldkit.CodePattern, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Mismatch
		}
		if !re.MatchString(s) {
			return Fail
		}
		return Pass
	}, "pattern", re.String())
}

var passwordRe = regexp.MustCompile(`^[\d!#$%&*@A-Z^a-z]*$`)

// Password restricts the value to ASCII letters, digits and !#$%&*@^.
func Password() Rule { return Matches("isPassword", passwordRe) }

// Enum requires one of values (case-sensitive).
func Enum(values ...string) Rule {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	list := append([]string(nil), values...)
	return New("isEnum", fieldkit.CodeInvalidEnum, func(v any) Outcome {
		s, ok := v.(string)
		if !ok {
			return Fail
		}
		if _, ok := allowed[s]; !ok {
			return Fail
		}
		return Pass
	}, "values", list)
}

// EnumValues returns the allowed literals of an Enum rule.
func EnumValues(r Rule) []string {
	if v, ok := r.Param("values"); ok {
		if list, ok := v.([]string); ok {
			return append([]string(nil), list...)
		}
	}
	return nil
}

func trimmed(s string) bool { return strings.TrimSpace(s) == s }
