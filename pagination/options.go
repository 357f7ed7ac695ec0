package pagination

import (
	"context"

	"github.com/spf13/cast"

	"github.com/reoring/fieldkit/field"
	"github.com/reoring/fieldkit/schema"
)

// Order is a sort direction.
type Order string

const (
	OrderASC  Order = "ASC"
	OrderDESC Order = "DESC"
)

// Orders lists the accepted directions.
var Orders = []string{string(OrderASC), string(OrderDESC)}

// OffsetOptions are the page options of an offset listing.
type OffsetOptions struct {
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
	Q     string `json:"q,omitempty"`
	Order Order  `json:"order"`
}

// Offset is the number of records to skip.
func (o OffsetOptions) Offset() int { return (o.Page - 1) * o.Limit }

// Paginate builds the metadata of the page o selects.
func (o OffsetOptions) Paginate(totalRecords int) OffsetResult {
	return BuildOffset(totalRecords, o.Limit, o.Page)
}

// CursorOptions are the page options of a cursor listing.
type CursorOptions struct {
	AfterCursor  string `json:"afterCursor,omitempty"`
	BeforeCursor string `json:"beforeCursor,omitempty"`
	Limit        int    `json:"limit"`
	Q            string `json:"q,omitempty"`
}

// Paginate builds the metadata of a page whose neighbours are after/before.
func (o CursorOptions) Paginate(totalRecords int, after, before string) CursorResult {
	return BuildCursor(totalRecords, after, before, o.Limit)
}

func limitField() field.Descriptor {
	return field.NumberOptional(field.Options{
		Int: true, Min: field.Float(1), Default: DefaultPageLimit,
		Doc: field.Doc{Description: "Maximum number of records per page"},
	})
}

// OffsetOptionsSchema validates offset page options (typically a query
// string).
var OffsetOptionsSchema = schema.New("PageOptionsOffset").
	Field("limit", limitField()).
	Field("page", field.NumberOptional(field.Options{
		Int: true, Min: field.Float(1), Default: DefaultCurrentPage,
		Doc: field.Doc{Description: "1-based page number"},
	})).
	Field("q", field.StringOptional(field.Options{Doc: field.Doc{Description: "Search query"}})).
	Field("order", field.EnumOptional("Order", Orders, field.Options{Default: string(OrderASC)})).
	MustBuild()

// CursorOptionsSchema validates cursor page options.
var CursorOptionsSchema = schema.New("PageOptionsCursor").
	Field("afterCursor", field.StringOptional(field.Options{})).
	Field("beforeCursor", field.StringOptional(field.Options{})).
	Field("limit", limitField()).
	Field("q", field.StringOptional(field.Options{Doc: field.Doc{Description: "Search query"}})).
	MustBuild()

// ParseOffsetOptions validates in and returns typed options with defaults
// applied. The error is fieldkit.Issues on validation failure.
func ParseOffsetOptions(ctx context.Context, v *schema.Validator, in map[string]any) (OffsetOptions, error) {
	out, err := v.Validate(ctx, OffsetOptionsSchema, in)
	if err != nil {
		return OffsetOptions{}, err
	}
	return OffsetOptions{
		Limit: intOr(out["limit"], DefaultPageLimit),
		Page:  intOr(out["page"], DefaultCurrentPage),
		Q:     cast.ToString(out["q"]),
		Order: orderOr(out["order"], OrderASC),
	}, nil
}

// ParseCursorOptions validates in and returns typed options with defaults
// applied.
func ParseCursorOptions(ctx context.Context, v *schema.Validator, in map[string]any) (CursorOptions, error) {
	out, err := v.Validate(ctx, CursorOptionsSchema, in)
	if err != nil {
		return CursorOptions{}, err
	}
	return CursorOptions{
		AfterCursor:  cast.ToString(out["afterCursor"]),
		BeforeCursor: cast.ToString(out["beforeCursor"]),
		Limit:        intOr(out["limit"], DefaultPageLimit),
		Q:            cast.ToString(out["q"]),
	}, nil
}

// intOr returns def for an explicit null, which the optional page fields
// let through.
func intOr(v any, def int) int {
	if v == nil {
		return def
	}
	return cast.ToInt(v)
}

func orderOr(v any, def Order) Order {
	if v == nil {
		return def
	}
	return Order(cast.ToString(v))
}
