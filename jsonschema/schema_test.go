package jsonschema_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/fieldkit/jsonschema"
)

func TestSchema_MarshalOmitsEmpty(t *testing.T) {
	s := jsonschema.Object("Page", map[string]*jsonschema.Schema{
		"order": {Type: "string", Enum: []any{"ASC", "DESC"}, EnumName: "Order"},
		"limit": {Type: "integer", Minimum: jsonschema.Ptr(1.0), Maximum: jsonschema.Ptr(50.0)},
	}, "limit")

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"object","title":"Page","required":["limit"],
		"properties":{
			"order":{"type":"string","enum":["ASC","DESC"],"x-enum-name":"Order"},
			"limit":{"type":"integer","minimum":1,"maximum":50}
		}}`, string(b))

	y, err := yaml.Marshal(jsonschema.ArrayOf(&jsonschema.Schema{Type: "string"}))
	require.NoError(t, err)
	assert.Equal(t, "type: array\nitems:\n    type: string\n", string(y))
}
