package rules

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownRule is returned when a registry lookup misses.
var ErrUnknownRule = errors.New("rules: unknown rule")

// Registry is an immutable name -> Rule table. It is passed explicitly to
// field builders; nothing registers into a process-wide table.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry builds a registry keyed by each rule's Name. Later rules with
// the same name replace earlier ones.
func NewRegistry(rs ...Rule) Registry {
	m := make(map[string]Rule, len(rs))
	for _, r := range rs {
		m[r.Name()] = r
	}
	return Registry{rules: m}
}

var std = NewRegistry(
	IsNumber(), Integer(), Positive(), Milliseconds(),
	IsString(), NotEmpty(), Password(),
	IsBoolean(), Email(), Token(), UUID(0), URL(), IsDate(), IsObject(),
).WithNamed("strictJWT", StrictToken())

// Default returns the registry of parameterless built-in rules.
func Default() Registry { return std }

// With returns a copy of reg that also holds rs under the given names.
func (reg Registry) With(rs ...Rule) Registry {
	m := maps.Clone(reg.rules)
	if m == nil {
		m = map[string]Rule{}
	}
	for _, r := range rs {
		m[r.Name()] = r
	}
	return Registry{rules: m}
}

// WithNamed registers r under an alias name.
func (reg Registry) WithNamed(name string, r Rule) Registry {
	m := maps.Clone(reg.rules)
	if m == nil {
		m = map[string]Rule{}
	}
	m[name] = r
	return Registry{rules: m}
}

// Lookup finds a rule by name.
func (reg Registry) Lookup(name string) (Rule, error) {
	r, ok := reg.rules[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// Names lists registered names, sorted.
func (reg Registry) Names() []string {
	return slices.Sorted(maps.Keys(reg.rules))
}
