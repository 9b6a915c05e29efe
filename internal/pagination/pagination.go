// Package pagination holds the page projection shared by every listing
// endpoint and the offset math behind it.
package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 3
	MaxPageSize     = 1000
)

type Page[T any] struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	Items       []T   `json:"items"`
}

// Offset returns the number of rows to skip for the given page.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// NewPage builds the projection around an already-counted, already-sliced
// result set. TotalItems reflects the count before slicing.
func NewPage[T any](page, pageSize int, total int64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		Items:       items,
	}
}
