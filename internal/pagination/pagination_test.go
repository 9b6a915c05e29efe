package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{name: "first page", page: 1, pageSize: 3, want: 0},
		{name: "second page", page: 2, pageSize: 3, want: 3},
		{name: "large page", page: 10, pageSize: 25, want: 225},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Offset(tt.page, tt.pageSize))
		})
	}
}

func TestNewPage_NeverNilItems(t *testing.T) {
	t.Parallel()

	page := NewPage[int](1, 3, 0, nil)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.EqualValues(t, 0, page.TotalItems)
}
