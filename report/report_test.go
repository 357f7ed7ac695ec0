package report_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/report"
)

var sample = fieldkit.Issues{
	{Path: "/email", Code: fieldkit.CodeRequired, Rule: "required", Message: "email should not be empty"},
	{Path: "/addresses/1/zip", Code: fieldkit.CodeTooShort, Rule: "minLength", Message: "zip too short"},
	{Path: "/addresses/1/zip", Code: fieldkit.CodePattern, Rule: "isPassword", Message: "zip is invalid"},
}

func TestDetails_GroupByProperty(t *testing.T) {
	d := report.Details(sample)
	assert.Equal(t, []report.ErrorDetail{
		{Property: "email", Messages: []string{"email should not be empty"}},
		{Property: "addresses.1.zip", Messages: []string{"zip too short", "zip is invalid"}},
	}, d)
	assert.Equal(t, "a/b", report.Property("/a~1b"))
	assert.Equal(t, "", report.Property("/"))
}

func TestHTTP_WritesErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
	clock := func() time.Time { return time.Date(2024, 10, 23, 10, 15, 30, 0, time.UTC) }

	rep := report.NewHTTP(rec, req, report.WithClock(clock))
	require.NoError(t, rep.Report(context.Background(), sample[:1]))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"timestamp":"2024-10-23T10:15:30Z","statusCode":400,"error":"Bad Request",
		"errorCode":"VALIDATION_FAILED","message":"Validation failed",
		"details":[{"property":"email","messages":["email should not be empty"]}],
		"path":"/api/v1/users","method":"POST"}`, rec.Body.String())
}

func TestHTTP_Options(t *testing.T) {
	rec := httptest.NewRecorder()
	rep := report.NewHTTP(rec, nil, report.WithStatus(http.StatusUnprocessableEntity), report.WithMessage("bad input"))
	require.NoError(t, rep.Report(context.Background(), sample))

	var body report.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 422, body.StatusCode)
	assert.Equal(t, "Unprocessable Entity", body.Error)
	assert.Equal(t, "bad input", body.Message)
	assert.Empty(t, body.Path)
	assert.Len(t, body.Details, 2)
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	rep := report.NewLog(zerolog.New(&buf))
	require.NoError(t, rep.Report(context.Background(), sample[:1]))

	var line struct {
		Level  string `json:"level"`
		Count  int    `json:"count"`
		Issues []struct {
			Path     string `json:"path"`
			Category string `json:"category"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line.Level)
	assert.Equal(t, 1, line.Count)
	assert.Equal(t, "/email", line.Issues[0].Path)
	assert.Equal(t, "missing_required", line.Issues[0].Category)

	buf.Reset()
	require.NoError(t, rep.Level(zerolog.ErrorLevel).Report(context.Background(), sample))
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestTee(t *testing.T) {
	var calls int
	ok := fieldkit.ReporterFunc(func(context.Context, fieldkit.Issues) error { calls++; return nil })
	boom := errors.New("boom")
	bad := fieldkit.ReporterFunc(func(context.Context, fieldkit.Issues) error { calls++; return boom })

	err := report.Tee(ok, bad, ok).Report(context.Background(), sample)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestBaseResponse(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := json.Marshal(report.NewBaseResponse(true, "Success", now))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Success","timestamp":"2024-01-02T03:04:05Z"}`, string(b))
}
