package pagination

import "math"

const (
	DefaultPageLimit   = 10
	DefaultCurrentPage = 1
)

// OffsetResult describes one page of an offset-paginated listing.
type OffsetResult struct {
	Limit        int  `json:"limit" yaml:"limit"`
	CurrentPage  int  `json:"currentPage" yaml:"currentPage"`
	NextPage     *int `json:"nextPage,omitempty" yaml:"nextPage,omitempty"`
	PreviousPage *int `json:"previousPage,omitempty" yaml:"previousPage,omitempty"`
	TotalRecords int  `json:"totalRecords" yaml:"totalRecords"`
	TotalPages   int  `json:"totalPages" yaml:"totalPages"`
}

// BuildOffset derives page metadata. totalPages is ceil(totalRecords/limit),
// or 1 when limit <= 0; zero records therefore yield zero pages and neither
// a next nor a previous page.
func BuildOffset(totalRecords, limit, currentPage int) OffsetResult {
	totalPages := 1
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(limit)))
	}
	r := OffsetResult{
		Limit:        limit,
		CurrentPage:  currentPage,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
	}
	if currentPage < totalPages {
		next := currentPage + 1
		r.NextPage = &next
	}
	if currentPage > 1 && currentPage-1 < totalPages {
		prev := currentPage - 1
		r.PreviousPage = &prev
	}
	return r
}

// CursorResult describes one page of a cursor-paginated listing. Cursors are
// opaque; an empty cursor is absent.
type CursorResult struct {
	Limit        int    `json:"limit" yaml:"limit"`
	AfterCursor  string `json:"afterCursor,omitempty" yaml:"afterCursor,omitempty"`
	BeforeCursor string `json:"beforeCursor,omitempty" yaml:"beforeCursor,omitempty"`
	TotalRecords int    `json:"totalRecords" yaml:"totalRecords"`
}

// BuildCursor passes its inputs through unchanged.
func BuildCursor(totalRecords int, afterCursor, beforeCursor string, limit int) CursorResult {
	return CursorResult{
		Limit:        limit,
		AfterCursor:  afterCursor,
		BeforeCursor: beforeCursor,
		TotalRecords: totalRecords,
	}
}

func (r CursorResult) HasAfter() bool  { return r.AfterCursor != "" }
func (r CursorResult) HasBefore() bool { return r.BeforeCursor != "" }
