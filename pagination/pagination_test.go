package pagination_test

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/jsonschema"
	"github.com/reoring/fieldkit/pagination"
	"github.com/reoring/fieldkit/schema"
)

func ptr(n int) *int { return &n }

func TestBuildOffset(t *testing.T) {
	tests := []struct {
		name               string
		total, limit, page int
		wantPages          int
		wantNext, wantPrev *int
	}{
		{"first page", 25, 10, 1, 3, ptr(2), nil},
		{"middle page", 25, 10, 2, 3, ptr(3), ptr(1)},
		{"last page", 25, 10, 3, 3, nil, ptr(2)},
		{"beyond last", 25, 10, 5, 3, nil, nil},
		{"one past last", 25, 10, 4, 3, nil, nil},
		{"zero records", 0, 10, 1, 0, nil, nil},
		{"zero limit", 25, 0, 1, 1, nil, nil},
		{"negative limit", 25, -5, 2, 1, nil, nil},
		{"exact multiple", 30, 10, 2, 3, ptr(3), ptr(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pagination.BuildOffset(tt.total, tt.limit, tt.page)
			assert.Equal(t, tt.limit, r.Limit)
			assert.Equal(t, tt.page, r.CurrentPage)
			assert.Equal(t, tt.total, r.TotalRecords)
			assert.Equal(t, tt.wantPages, r.TotalPages)
			assert.Equal(t, tt.wantNext, r.NextPage)
			assert.Equal(t, tt.wantPrev, r.PreviousPage)
		})
	}
}

func TestBuildOffset_JSONOmitsAbsentPages(t *testing.T) {
	b, err := json.Marshal(pagination.BuildOffset(25, 10, 1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit":10,"currentPage":1,"nextPage":2,"totalRecords":25,"totalPages":3}`, string(b))
}

func TestBuildCursor_PassThrough(t *testing.T) {
	r := pagination.BuildCursor(100, "abc", "", 10)
	assert.Equal(t, pagination.CursorResult{Limit: 10, AfterCursor: "abc", TotalRecords: 100}, r)
	assert.True(t, r.HasAfter())
	assert.False(t, r.HasBefore())

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit":10,"afterCursor":"abc","totalRecords":100}`, string(b))
}

func TestParseOffsetOptions(t *testing.T) {
	v := schema.NewValidator()

	o, err := pagination.ParseOffsetOptions(context.Background(), v, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, pagination.OffsetOptions{Limit: 10, Page: 1, Order: pagination.OrderASC}, o)
	assert.Equal(t, 0, o.Offset())

	o, err = pagination.ParseOffsetOptions(context.Background(), v, map[string]any{"limit": "20", "page": "3", "order": "DESC", "q": "go"})
	require.NoError(t, err)
	assert.Equal(t, 40, o.Offset())
	assert.Equal(t, pagination.OrderDESC, o.Order)
	assert.Equal(t, 2, *o.Paginate(45).PreviousPage)

	_, err = pagination.ParseOffsetOptions(context.Background(), v, map[string]any{"limit": "0", "page": "x", "order": "asc"})
	iss, ok := fieldkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, []string{"/limit", "/page", "/order"}, iss.Paths())
	assert.Contains(t, iss.At("/order")[0].Message, `["ASC","DESC"]`)
}

func TestParseOffsetOptions_NullUsesDefaults(t *testing.T) {
	v := schema.NewValidator()

	o, err := pagination.ParseOffsetOptions(context.Background(), v, map[string]any{"limit": 20, "page": nil})
	require.NoError(t, err)
	assert.Equal(t, 1, o.Page)
	assert.Equal(t, 0, o.Offset())
	r := o.Paginate(45)
	assert.Equal(t, 1, r.CurrentPage)
	assert.Equal(t, 2, *r.NextPage)

	o, err = pagination.ParseOffsetOptions(context.Background(), v, map[string]any{"limit": nil, "order": nil})
	require.NoError(t, err)
	assert.Equal(t, pagination.OffsetOptions{Limit: 10, Page: 1, Order: pagination.OrderASC}, o)
}

func TestParseCursorOptions(t *testing.T) {
	o, err := pagination.ParseCursorOptions(context.Background(), schema.NewValidator(), map[string]any{"afterCursor": "c1"})
	require.NoError(t, err)
	assert.Equal(t, pagination.CursorOptions{AfterCursor: "c1", Limit: 10}, o)
	assert.Equal(t, "c2", o.Paginate(5, "c2", "").AfterCursor)

	o, err = pagination.ParseCursorOptions(context.Background(), schema.NewValidator(), map[string]any{"limit": nil})
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultPageLimit, o.Limit)
}

func TestPages(t *testing.T) {
	p := pagination.NewOffsetPage[string](nil, pagination.BuildOffset(0, 10, 1))
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"limit":10,"currentPage":1,"totalRecords":0,"totalPages":0}}`, string(b))

	c := pagination.NewCursorPage([]int{1, 2}, pagination.BuildCursor(2, "", "", 10))
	assert.Len(t, c.Data, 2)

	s := pagination.OffsetPageSchema(&jsonschema.Schema{Type: "string"})
	assert.Equal(t, "string", s.Properties["data"].Items.Type)
	assert.Contains(t, s.Properties["pagination"].Required, "totalPages")
	assert.Equal(t, "integer", pagination.CursorPageSchema(&jsonschema.Schema{}).Properties["pagination"].Properties["limit"].Type)
}

func TestOptionSchemas_Document(t *testing.T) {
	js := pagination.OffsetOptionsSchema.JSONSchema()
	assert.Empty(t, js.Required)
	assert.Equal(t, 10, js.Properties["limit"].Default)
	assert.Equal(t, "Order", js.Properties["order"].EnumName)
}
