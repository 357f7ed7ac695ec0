package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reoring/fieldkit/config"
	"github.com/reoring/fieldkit/jsonschema"
	"github.com/reoring/fieldkit/pagination"
	"github.com/reoring/fieldkit/schema"
)

// named is a CLI-addressable schema. Result schemas only have documentation.
type named struct {
	schema *schema.Schema
	doc    func() *jsonschema.Schema
}

func catalog() map[string]named {
	m := map[string]named{
		"offset-options": fromSchema(pagination.OffsetOptionsSchema),
		"cursor-options": fromSchema(pagination.CursorOptionsSchema),
		"offset-result":  {doc: pagination.OffsetResultSchema},
		"cursor-result":  {doc: pagination.CursorResultSchema},
	}
	for _, s := range config.Sections() {
		m[kebab(s.Name)] = fromSchema(s.Schema)
	}
	return m
}

func fromSchema(s *schema.Schema) named {
	return named{schema: s, doc: s.JSONSchema}
}

// kebab turns "RabbitMQConfig" into "rabbitmq-config".
func kebab(name string) string {
	base, ok := strings.CutSuffix(name, "Config")
	base = strings.ToLower(base)
	if ok {
		return base + "-config"
	}
	return base
}

func names() []string {
	var out []string
	for k := range catalog() {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func lookup(name string) (named, error) {
	n, ok := catalog()[name]
	if !ok {
		return named{}, fmt.Errorf("unknown schema %q (known: %s)", name, strings.Join(names(), ", "))
	}
	return n, nil
}
