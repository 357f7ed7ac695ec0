package field

import (
	"context"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/i18n"
	"github.com/reoring/fieldkit/jsonschema"
	"github.com/reoring/fieldkit/rules"
	"github.com/reoring/fieldkit/transform"
)

// UnknownEnumName is the documentation name of enums built without one.
const UnknownEnumName = "Unknown"

// Doc is documentation metadata. It never affects validation.
type Doc struct {
	Type        string // display type override
	Format      string
	Title       string
	Description string
	Example     any
	Deprecated  bool
	// Hidden keeps the field out of generated schema documents.
	Hidden bool
}

// Options configures Build. Fields that do not apply to the requested kind
// must be left zero.
type Options struct {
	Optional bool
	Nullable bool // explicit null passes; absence still requires a value
	Repeated bool
	Default  any // substituted when the key is absent; nil means none
	Doc      Doc

	// Number
	Int      bool
	Min      *float64
	Max      *float64
	Positive bool

	// String (ToLower/ToUpper/Trim also apply to Email)
	MinLength *int
	MaxLength *int
	ToLower   bool
	ToUpper   bool
	Trim      bool

	// Enum
	Values   []string
	EnumName string

	// UUID version (0 = any, 1..5)
	Version int

	// URL scheme allow-list
	Schemes []string

	// Token: also decode the header and claims
	Strict bool

	// Object
	Schema ObjectSchema

	// Transform runs after the kind's own transform.
	Transform transform.Func
	// Rules are appended after the kind's rules.
	Rules []rules.Rule
	// RuleNames are resolved from the builder registry and appended.
	RuleNames []string
	// Messages overrides message templates by rule name.
	Messages map[string]string
}

// Env carries where a value is validated and how messages are rendered.
type Env struct {
	Path     fieldkit.PathRef
	Messages i18n.Translator
}

// ObjectSchema is a nested descriptor table. schema.Schema implements it.
type ObjectSchema interface {
	Name() string
	ValidateObject(ctx context.Context, env Env, in map[string]any) (map[string]any, fieldkit.Issues)
	JSONSchema() *jsonschema.Schema
}

// Int returns a pointer to n, for MinLength/MaxLength.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for Min/Max.
func Float(f float64) *float64 { return &f }
