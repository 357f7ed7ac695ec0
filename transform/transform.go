package transform

// Func rewrites a value before validation.
type Func func(any) any

// Each lifts a scalar rewrite to a Func that also maps over sequences.
func Each(fn func(any) any) Func {
	return func(v any) any {
		switch t := v.(type) {
		case []any:
			out := make([]any, len(t))
			for i, e := range t {
				out[i] = fn(e)
			}
			return out
		case []string:
			out := make([]any, len(t))
			for i, e := range t {
				out[i] = fn(e)
			}
			return out
		default:
			return fn(v)
		}
	}
}

// Strings lifts a string rewrite to a Func. Non-string values, including
// non-string elements of a sequence, pass through. A []string input stays a
// []string.
func Strings(fn func(string) string) Func {
	return func(v any) any {
		switch t := v.(type) {
		case string:
			return fn(t)
		case []string:
			out := make([]string, len(t))
			for i, e := range t {
				out[i] = fn(e)
			}
			return out
		case []any:
			out := make([]any, len(t))
			for i, e := range t {
				if s, ok := e.(string); ok {
					out[i] = fn(s)
					continue
				}
				out[i] = e
			}
			return out
		default:
			return v
		}
	}
}

// Chain composes fns left to right. Nil entries are skipped; an empty chain
// is the identity.
func Chain(fns ...Func) Func {
	var list []Func
	for _, f := range fns {
		if f != nil {
			list = append(list, f)
		}
	}
	switch len(list) {
	case 0:
		return Identity
	case 1:
		return list[0]
	}
	return func(v any) any {
		for _, f := range list {
			v = f(v)
		}
		return v
	}
}

// Identity returns v unchanged.
func Identity(v any) any { return v }
