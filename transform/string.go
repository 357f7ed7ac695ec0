package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TrimCollapse strips leading and trailing whitespace and collapses internal
// runs of two or more whitespace characters into a single space. A lone
// whitespace character between words is kept as is.
var TrimCollapse Func = Strings(trimCollapse)

// ToUpper upper-cases strings without locale-specific rules.
var ToUpper Func = Strings(func(s string) string {
	return cases.Upper(language.Und).String(s)
})

// ToLower lower-cases strings without locale-specific rules.
var ToLower Func = Strings(func(s string) string {
	return cases.Lower(language.Und).String(s)
})

// Capitalize upper-cases the first rune and leaves the rest untouched.
var Capitalize Func = Strings(func(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
})

// RemoveSpaces drops every whitespace character.
var RemoveSpaces Func = Strings(func(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
})

func trimCollapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	var pending rune
	flush := func() {
		switch {
		case run == 1:
			b.WriteRune(pending)
		case run > 1:
			b.WriteByte(' ')
		}
		run = 0
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			if run == 0 {
				pending = r
			}
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return strings.TrimSpace(b.String())
}
