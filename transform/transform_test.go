package transform_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/fieldkit/transform"
)

func TestTrimCollapse(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"   ":                    "",
		"  hello   world  ":      "hello world",
		"a\t\tb":                 "a b",
		"a\tb":                   "a\tb",
		"line one\n\n  line two": "line one line two",
		"already clean":          "already clean",
	}
	for in, want := range cases {
		assert.Equal(t, want, transform.TrimCollapse(in), "input %q", in)
	}
}

func TestTrimCollapse_Properties(t *testing.T) {
	inputs := []string{" a  b ", "\t x \n\n y\t", "x", "  many     spaces   here ", "a \t b"}
	for _, in := range inputs {
		once := transform.TrimCollapse(in).(string)
		assert.Equal(t, strings.TrimSpace(once), once, "no leading/trailing whitespace for %q", in)
		assert.NotContains(t, once, "  ", "no double spaces for %q", in)
		assert.Equal(t, once, transform.TrimCollapse(once), "idempotent for %q", in)
	}
}

func TestStringTransforms_Sequences(t *testing.T) {
	got := transform.ToUpper([]any{"asc", 3, "desc"})
	assert.Equal(t, []any{"ASC", 3, "DESC"}, got)

	gotS := transform.ToLower([]string{"ASC", "DeSc"})
	assert.Equal(t, []string{"asc", "desc"}, gotS)

	assert.Equal(t, 42, transform.TrimCollapse(42), "non-strings pass through")
}

func TestCaseFolding_LocaleInsensitive(t *testing.T) {
	assert.Equal(t, "TITLE", transform.ToUpper("title"))
	assert.Equal(t, "istanbul", transform.ToLower("ISTANBUL"))
}

func TestCapitalizeAndRemoveSpaces(t *testing.T) {
	assert.Equal(t, "Hello world", transform.Capitalize("hello world"))
	assert.Equal(t, "", transform.Capitalize(""))
	assert.Equal(t, "Ébc", transform.Capitalize("ébc"))
	assert.Equal(t, "abc", transform.RemoveSpaces(" a b\tc\n"))
}

func TestCoerceBoolean(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{"TRUE", true},
		{"true", true},
		{" 1 ", true},
		{"0", false},
		{"false", false},
		{"yes", false},
		{"", false},
		{1, true},
		{1.0, true},
		{2, false},
		{0, false},
		{json.Number("1"), true},
		{true, true},
		{false, false},
		{nil, false},
		{map[string]any{}, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, transform.CoerceBoolean(c.in), "input %#v", c.in)
	}
}

func TestCoerceBoolean_IdempotentOnBooleans(t *testing.T) {
	for _, b := range []bool{true, false} {
		once := transform.CoerceBoolean(b)
		assert.Equal(t, b, once)
		assert.Equal(t, once, transform.CoerceBoolean(once))
	}
	assert.Equal(t, []any{true, false, true}, transform.CoerceBoolean([]any{"1", "no", 1}))
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 10.0, transform.ToNumber("10"))
	assert.Equal(t, 2.5, transform.ToNumber(" 2.5 "))
	assert.Equal(t, 7.0, transform.ToNumber(7))
	assert.Equal(t, 3.0, transform.ToNumber(json.Number("3")))
	assert.Equal(t, "ten", transform.ToNumber("ten"))
	assert.Equal(t, true, transform.ToNumber(true), "booleans are not numbers")
	assert.Equal(t, []any{1.0, "x"}, transform.ToNumber([]any{"1", "x"}))
}

func TestToTime(t *testing.T) {
	got := transform.ToTime("2024-10-23T10:15:30Z")
	tm, ok := got.(time.Time)
	require.True(t, ok, "expected time.Time, got %T", got)
	assert.Equal(t, 2024, tm.Year())

	got = transform.ToTime("2024-10-23")
	_, ok = got.(time.Time)
	assert.True(t, ok)

	assert.Equal(t, "not a date", transform.ToTime("not a date"))
	assert.Equal(t, 5, transform.ToTime(5))
}

func TestChain(t *testing.T) {
	f := transform.Chain(transform.TrimCollapse, nil, transform.ToUpper)
	assert.Equal(t, "A B", f("  a   b "))
	assert.Equal(t, "x", transform.Chain()("x"))
}
