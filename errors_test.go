package fieldkit_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reoring/fieldkit"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := fieldkit.Issues{
		{Path: "/a", Code: fieldkit.CodeInvalidType},
		{Path: "/b", Code: fieldkit.CodeUnknownKey},
		{Path: "/c", Code: fieldkit.CodeTooShort},
		{Path: "/d", Code: fieldkit.CodeTooLong},
	}
	got := iss.Error()
	want := "invalid_type at /a; unknown_key at /b; too_short at /c; ... (total 4)"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if (fieldkit.Issues{}).Error() != "" {
		t.Fatalf("empty Issues should render as empty string")
	}
}

func TestIssues_Lookup(t *testing.T) {
	iss := fieldkit.Issues{
		{Path: "/tags/1", Code: fieldkit.CodeTooLong},
		{Path: "/age", Code: fieldkit.CodeNotInteger},
		{Path: "/age", Code: fieldkit.CodeTooSmall},
	}
	if !iss.Has("/age") || iss.Has("/tags") {
		t.Fatalf("Has mismatch: %v", iss)
	}
	if n := len(iss.At("/age")); n != 2 {
		t.Fatalf("At(/age) = %d issues, want 2", n)
	}
	if got := strings.Join(iss.Paths(), ","); got != "/tags/1,/age" {
		t.Fatalf("Paths() = %s", got)
	}
}

func TestIssues_Under(t *testing.T) {
	iss := fieldkit.Issues{
		{Path: "/city", Code: fieldkit.CodeRequired},
		{Path: "/", Code: fieldkit.CodeInvalidType},
	}
	got := iss.Under("/addresses/0")
	if got[0].Path != "/addresses/0/city" || got[1].Path != "/addresses/0" {
		t.Fatalf("Under rebased to %v", got.Paths())
	}
	if iss[0].Path != "/city" {
		t.Fatalf("Under must not mutate the receiver")
	}
	if out := iss.Under("/"); len(out) != 2 || out[0].Path != "/city" {
		t.Fatalf("Under(/) should be identity, got %v", out.Paths())
	}
}

func TestIssue_Category(t *testing.T) {
	cases := map[string]fieldkit.Category{
		fieldkit.CodeInvalidType:  fieldkit.CategoryTypeMismatch,
		fieldkit.CodeRequired:     fieldkit.CategoryMissing,
		fieldkit.CodeUnknownKey:   fieldkit.CategoryUnknown,
		fieldkit.CodeDuplicateKey: fieldkit.CategoryMalformed,
		fieldkit.CodeParseError:   fieldkit.CategoryMalformed,
		fieldkit.CodeTooSmall:     fieldkit.CategoryConstraint,
		fieldkit.CodeInvalidEnum:  fieldkit.CategoryConstraint,
	}
	for code, want := range cases {
		if got := (fieldkit.Issue{Code: code}).Category(); got != want {
			t.Errorf("%s: category %s, want %s", code, got, want)
		}
	}
	if fieldkit.CategoryConstraint.String() != "constraint_violation" {
		t.Errorf("unexpected category name %q", fieldkit.CategoryConstraint)
	}
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	base := fieldkit.Issues{{Path: "/x", Code: fieldkit.CodeRequired}}
	err := fmt.Errorf("handler: %w", base)
	iss, ok := fieldkit.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("AsIssues(wrapped) = %v, %v", iss, ok)
	}
	if _, ok := fieldkit.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}
	if _, ok := fieldkit.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}

func TestIssuesFromErr(t *testing.T) {
	cause := errors.New("unexpected EOF")
	iss := fieldkit.IssuesFromErr("/", cause)
	if len(iss) != 1 || iss[0].Code != fieldkit.CodeParseError || !errors.Is(iss[0].Cause, cause) {
		t.Fatalf("IssuesFromErr = %#v", iss)
	}
	if fieldkit.IssuesFromErr("/", nil) != nil {
		t.Fatalf("nil error should give nil issues")
	}
}

func TestReporterFunc(t *testing.T) {
	var seen fieldkit.Issues
	var r fieldkit.Reporter = fieldkit.ReporterFunc(func(_ context.Context, iss fieldkit.Issues) error {
		seen = iss
		return nil
	})
	_ = r.Report(context.Background(), fieldkit.Issues{{Path: "/a"}})
	if len(seen) != 1 {
		t.Fatalf("reporter not invoked")
	}
}

func TestFailFastContext(t *testing.T) {
	ctx := context.Background()
	if fieldkit.IsFailFast(ctx) {
		t.Fatalf("fail-fast must be off by default")
	}
	if !fieldkit.IsFailFast(fieldkit.WithFailFast(ctx, true)) {
		t.Fatalf("WithFailFast(true) not observed")
	}
}
