package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate_OffsetOptionsFromStdin(t *testing.T) {
	out, err := run(t, `{"limit":"20","page":2}`, "validate", "--schema", "offset-options")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(20), got["limit"])
	assert.Equal(t, float64(2), got["page"])
	assert.Equal(t, "ASC", got["order"])
}

func TestValidate_PrintsErrorBody(t *testing.T) {
	out, err := run(t, `{"limit":0,"order":"UP"}`, "validate", "--schema", "offset-options")
	require.ErrorIs(t, err, errIssues)

	var body struct {
		StatusCode int    `json:"statusCode"`
		ErrorCode  string `json:"errorCode"`
		Details    []struct {
			Property string   `json:"property"`
			Messages []string `json:"messages"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 400, body.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", body.ErrorCode)
	var props []string
	for _, d := range body.Details {
		props = append(props, d.Property)
	}
	assert.ElementsMatch(t, []string{"limit", "order"}, props)
}

func TestValidate_VietnameseMessages(t *testing.T) {
	out, err := run(t, `{"order":"UP"}`, "--lang", "vi-VN", "validate", "--schema", "offset-options")
	require.ErrorIs(t, err, errIssues)
	assert.Contains(t, out, "phải là một trong các giá trị")
}

func TestValidate_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limit: 5\nafterCursor: abc\n"), 0o600))

	out, err := run(t, "", "validate", "--schema", "cursor-options", "--output", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "limit: 5")
	assert.Contains(t, out, "afterCursor: abc")
}

func TestValidate_DuplicateKeyIsReported(t *testing.T) {
	out, err := run(t, `{"limit":1,"limit":2}`, "validate", "--schema", "offset-options")
	require.ErrorIs(t, err, errIssues)
	assert.Contains(t, out, `"property": "limit"`)
}

func TestValidate_UnknownSchema(t *testing.T) {
	_, err := run(t, `{}`, "validate", "--schema", "nope")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errIssues)
	assert.Contains(t, err.Error(), "offset-options")
}

func TestValidate_DocumentationOnlySchema(t *testing.T) {
	_, err := run(t, `{}`, "validate", "--schema", "offset-result")
	assert.ErrorContains(t, err, "documentation only")
}

func TestSchema_JSONAndYAML(t *testing.T) {
	out, err := run(t, "", "schema", "offset-options")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, doc["properties"], "order")

	out, err = run(t, "", "schema", "app-config", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "APP_PORT:")
}

func TestSchema_List(t *testing.T) {
	out, err := run(t, "", "schema", "--list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "rabbitmq-config")
	assert.Contains(t, lines, "cursor-result")
	assert.IsIncreasing(t, lines)
}

func TestPaginate(t *testing.T) {
	out, err := run(t, "", "paginate", "offset", "--total", "95", "--limit", "10", "--page", "3")
	require.NoError(t, err)
	var off map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &off))
	assert.Equal(t, float64(10), off["totalPages"])
	assert.Equal(t, float64(4), off["nextPage"])
	assert.Equal(t, float64(2), off["previousPage"])

	out, err = run(t, "", "paginate", "cursor", "--total", "7", "--after", "c1")
	require.NoError(t, err)
	var cur map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cur))
	assert.Equal(t, "c1", cur["afterCursor"])
	assert.NotContains(t, cur, "beforeCursor")
}

func TestRootRejectsBadLogFormat(t *testing.T) {
	_, err := run(t, "", "--log-format", "xml", "paginate", "offset")
	assert.Error(t, err)
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "rabbitmq-config", kebab("RabbitMQConfig"))
	assert.Equal(t, "app-config", kebab("AppConfig"))
	assert.Equal(t, "thing", kebab("Thing"))
}
