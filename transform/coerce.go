package transform

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// CoerceBoolean converts strings and numbers to booleans:
//
//   - string: true iff it equals "true" or "1" after trimming, case-insensitively
//   - number: true iff it equals 1
//   - bool: unchanged
//   - anything else: Go truthiness (nil and zero values are false)
var CoerceBoolean Func = Each(toBoolean)

// ToNumber converts numeric strings, json.Number and Go integer/float types
// to float64. Anything that does not parse passes through unchanged.
var ToNumber Func = Each(toNumber)

// ToTime converts date/time strings to time.Time. Accepted layouts are the
// ones spf13/cast understands (RFC3339, RFC1123, "2006-01-02", ...).
// Unparseable strings pass through unchanged.
var ToTime Func = Each(toTime)

func toBoolean(v any) any {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1"
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 1
	case nil:
		return false
	}
	if isNumber(v) {
		f, err := cast.ToFloat64E(v)
		return err == nil && f == 1
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Struct:
		// Containers are truthy regardless of content.
		return true
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}

func toNumber(v any) any {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(t))
		if err != nil {
			return v
		}
		return f
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return v
		}
		return f
	}
	if isNumber(v) {
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	return v
}

func toTime(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return v
	}
	tm, err := cast.ToTimeE(s)
	if err != nil {
		return v
	}
	return tm
}

// isNumber reports whether v is a Go numeric value (bools excluded).
func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
