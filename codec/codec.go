package codec

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/fieldkit"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("codec: unknown format %q", s)
}

// FormatOf guesses the format from a file name; anything that is not
// .yaml/.yml is JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode decodes data in the given format.
func Decode(f Format, data []byte) (any, error) {
	if f == YAML {
		return DecodeYAML(data)
	}
	return DecodeJSON(data)
}

// DecodeJSON decodes one JSON document. Failures are fieldkit.Issues:
// duplicate keys carry CodeDuplicateKey, syntax errors CodeParseError.
func DecodeJSON(data []byte) (any, error) {
	if iss := DuplicateKeys(data); len(iss) > 0 {
		return nil, iss
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fieldkit.IssuesFromErr("/", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fieldkit.Issues{{Path: "/", Code: fieldkit.CodeParseError, Message: "trailing data after JSON document"}}
	}
	return v, nil
}

// DecodeYAML decodes one YAML document. yaml.v3 already rejects duplicate
// mapping keys.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fieldkit.IssuesFromErr("/", err)
	}
	return normalizeYAML(v), nil
}

// normalizeYAML converts map[any]any nodes (non-string keys) to
// map[string]any so every decoded object has the same shape.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	}
	return v
}

// EncodeJSON writes v as JSON, indented when indent is set.
func EncodeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// EncodeYAML writes v as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Encode writes v in the given format.
func Encode(w io.Writer, f Format, v any) error {
	if f == YAML {
		return EncodeYAML(w, v)
	}
	return EncodeJSON(w, v, true)
}
