// Package shared holds the building blocks used by every RMS bounded context:
// paging, transactions, the acting user and the common error values.
package shared

import (
	"math"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Sort orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Paging defaults
const (
	DefaultPage   = 1
	DefaultSize   = 10
	DefaultSortBy = "seq"
)

// ErrInvalidPageQuery is returned for out of range paging parameters.
var ErrInvalidPageQuery = apperrors.BadRequest("INVALID_PAGE_QUERY", "invalid page query")

// ErrInvalidSortColumn is returned when sort_by does not name a column.
var ErrInvalidSortColumn = apperrors.BadRequest("INVALID_SORT_COLUMN", "invalid sort column")

// PageQuery selects one page of a sorted listing.
type PageQuery struct {
	Page   int    `json:"page" validate:"min=1"`
	Size   int    `json:"size" validate:"min=1"`
	SortBy string `json:"sort_by" validate:"required"`
	Order  string `json:"order" validate:"oneof=asc desc"`
}

// NewPageQuery returns the first page with default size, sorted by seq ascending.
func NewPageQuery() *PageQuery {
	return &PageQuery{
		Page:   DefaultPage,
		Size:   DefaultSize,
		SortBy: DefaultSortBy,
		Order:  OrderAsc,
	}
}

// Validate checks the paging parameters
func (q *PageQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return ErrInvalidPageQuery.Wrap(err)
	}
	return nil
}

// Offset is the number of rows skipped before the page starts.
func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// TotalPages returns ceil(total/size).
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(size)))
}
