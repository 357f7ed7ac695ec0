package fieldkit

// UnknownPolicy controls how keys not declared by a schema are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys.
	UnknownStrict                      // Reject unknown keys with an issue.
)

// missing is the type of the Missing sentinel.
type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing stands for a key that is absent from the input, as opposed to a key
// that is present with a null value (nil). Schemas pass it to descriptors so
// required/nullable/default semantics can tell the two apart.
var Missing any = missing{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// IsAbsent reports whether v is Missing or nil.
func IsAbsent(v any) bool { return v == nil || IsMissing(v) }
