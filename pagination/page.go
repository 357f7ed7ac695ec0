package pagination

import "github.com/reoring/fieldkit/jsonschema"

// OffsetPage is the response envelope of an offset listing.
type OffsetPage[T any] struct {
	Data       []T          `json:"data"`
	Pagination OffsetResult `json:"pagination"`
}

// NewOffsetPage wraps data; a nil slice is returned as an empty list.
func NewOffsetPage[T any](data []T, meta OffsetResult) OffsetPage[T] {
	if data == nil {
		data = []T{}
	}
	return OffsetPage[T]{Data: data, Pagination: meta}
}

// CursorPage is the response envelope of a cursor listing.
type CursorPage[T any] struct {
	Data       []T          `json:"data"`
	Pagination CursorResult `json:"pagination"`
}

// NewCursorPage wraps data; a nil slice is returned as an empty list.
func NewCursorPage[T any](data []T, meta CursorResult) CursorPage[T] {
	if data == nil {
		data = []T{}
	}
	return CursorPage[T]{Data: data, Pagination: meta}
}

func integer() *jsonschema.Schema { return &jsonschema.Schema{Type: "integer"} }
func str() *jsonschema.Schema     { return &jsonschema.Schema{Type: "string"} }

// OffsetResultSchema documents OffsetResult.
func OffsetResultSchema() *jsonschema.Schema {
	return jsonschema.Object("OffsetPagination", map[string]*jsonschema.Schema{
		"limit":        integer(),
		"currentPage":  integer(),
		"nextPage":     integer(),
		"previousPage": integer(),
		"totalRecords": integer(),
		"totalPages":   integer(),
	}, "limit", "currentPage", "totalRecords", "totalPages")
}

// CursorResultSchema documents CursorResult.
func CursorResultSchema() *jsonschema.Schema {
	return jsonschema.Object("CursorPagination", map[string]*jsonschema.Schema{
		"limit":        integer(),
		"afterCursor":  str(),
		"beforeCursor": str(),
		"totalRecords": integer(),
	}, "limit", "totalRecords")
}

// OffsetPageSchema documents an OffsetPage whose elements follow item.
func OffsetPageSchema(item *jsonschema.Schema) *jsonschema.Schema {
	return jsonschema.Object("OffsetPaginated", map[string]*jsonschema.Schema{
		"data":       jsonschema.ArrayOf(item),
		"pagination": OffsetResultSchema(),
	}, "data", "pagination")
}

// CursorPageSchema documents a CursorPage whose elements follow item.
func CursorPageSchema(item *jsonschema.Schema) *jsonschema.Schema {
	return jsonschema.Object("CursorPaginated", map[string]*jsonschema.Schema{
		"data":       jsonschema.ArrayOf(item),
		"pagination": CursorResultSchema(),
	}, "data", "pagination")
}
