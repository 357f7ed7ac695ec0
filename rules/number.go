package rules

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/reoring/fieldkit"
)

// AsFloat reports the numeric value of v. Strings are not numbers here;
// coercion belongs to transforms.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func finite(v any) (float64, bool) {
	f, ok := AsFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsNumber requires a finite number.
func IsNumber() Rule {
	return New("isNumber", fieldkit.CodeInvalidType, func(v any) Outcome {
		if _, ok := finite(v); !ok {
			return Mismatch
		}
		return Pass
	})
}

// Integer requires a whole number.
func Integer() Rule {
	return New("isInt", fieldkit.CodeNotInteger, func(v any) Outcome {
		f, ok := finite(v)
		if !ok {
			return Mismatch
		}
		if f != math.Trunc(f) {
			return Fail
		}
		return Pass
	})
}

// Min requires v >= n.
func Min(n float64) Rule {
	return New("min", fieldkit.CodeTooSmall, func(v any) Outcome {
		f, ok := finite(v)
		if !ok {
			return Mismatch
		}
		if f < n {
			return Fail
		}
		return Pass
	}, "min", n)
}

// Max requires v <= n.
func Max(n float64) Rule {
	return New("max", fieldkit.CodeTooBig, func(v any) Outcome {
		f, ok := finite(v)
		if !ok {
			return Mismatch
		}
		if f > n {
			return Fail
		}
		return Pass
	}, "max", n)
}

// Positive requires v > 0.
func Positive() Rule {
	return New("isPositive", fieldkit.CodeNotPositive, func(v any) Outcome {
		f, ok := finite(v)
		if !ok {
			return Mismatch
		}
		if f <= 0 {
			return Fail
		}
		return Pass
	})
}

// Milliseconds requires a non-negative whole number.
func Milliseconds() Rule {
	return New("isMs", fieldkit.CodeInvalidFormat, func(v any) Outcome {
		f, ok := finite(v)
		if !ok {
			return Mismatch
		}
		if f < 0 || f != math.Trunc(f) {
			return Fail
		}
		return Pass
	})
}
