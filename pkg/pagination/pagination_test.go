package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsValues(t *testing.T) {
	p := Params{Page: 0, PerPage: -3, SortOrder: "DESCENDING", Search: "  tea "}.Normalize()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, SortOrderDesc, p.SortOrder)
	assert.Equal(t, "tea", p.Search)

	p = Params{Page: 3, PerPage: 500, SortOrder: "ASC"}.Normalize()
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, SortOrderAsc, p.SortOrder)
}

func TestOffset(t *testing.T) {
	p := Params{Page: 1, PerPage: 10}
	assert.Equal(t, 0, p.Offset())

	p = Params{Page: 3, PerPage: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestGenerateMeta(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		total       int64
		hasNext     bool
		hasPrevious bool
	}{
		{name: "first page covers everything", page: 1, perPage: 10, total: 3, hasNext: false, hasPrevious: false},
		{name: "middle page", page: 2, perPage: 10, total: 25, hasNext: true, hasPrevious: true},
		{name: "last page exact fit", page: 3, perPage: 10, total: 30, hasNext: false, hasPrevious: true},
		{name: "empty result", page: 1, perPage: 10, total: 0, hasNext: false, hasPrevious: false},
		{name: "page far past the end", page: 5, perPage: 10, total: 12, hasNext: false, hasPrevious: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := GenerateMeta(Params{Page: tt.page, PerPage: tt.perPage}, tt.total)
			assert.Equal(t, tt.hasNext, meta.HasNext)
			assert.Equal(t, tt.hasPrevious, meta.HasPrevious)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.perPage, meta.PerPage)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestGenerateMetaWithPagingBypass(t *testing.T) {
	meta := GenerateMeta(Params{Page: 1, PerPage: 10, All: true}.Normalize(), 25)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
	assert.Equal(t, 25, meta.PerPage)
	assert.EqualValues(t, 25, meta.Total)
}
