// internal/domain/common/repository_common.go
package common

import "time"

// TimeRange is the shared period filter.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// Sort is the shared sort specification.
// Column names are validated per domain against an allow list.
type Sort struct {
	Column string
	Order  SortOrder
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Page is an offset paging specification.
type Page struct {
	Number  int // 1-based
	PerPage int // <= 0 means implementation default
}

// PageResult is a paged result set.
type PageResult[T any] struct {
	Items      []T
	TotalCount int
	TotalPages int
	Page       int
	PerPage    int
}

// NormalizePage clamps paging input to (page, perPage, offset).
func NormalizePage(number, perPage, def, max int) (int, int, int) {
	if number < 1 {
		number = 1
	}
	if perPage <= 0 {
		perPage = def
	}
	if perPage > max {
		perPage = max
	}
	return number, perPage, (number - 1) * perPage
}

// TotalPages computes the page count for a total and page size.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	n := total / perPage
	if total%perPage != 0 {
		n++
	}
	return n
}
