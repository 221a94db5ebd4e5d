package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoldsSentinels(t *testing.T) {
	q := Query{Search: "  arch ", Category: "All", Location: "all", MinPrice: -5, MaxPrice: -1}.Normalize()

	assert.Equal(t, "arch", q.Search)
	assert.Empty(t, q.Category)
	assert.Empty(t, q.Location)
	assert.Zero(t, q.MinPrice)
	assert.Zero(t, q.MaxPrice)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestNormalizeKeepsRealFilters(t *testing.T) {
	q := Query{Category: "Wedding", Location: "Dhaka", MinPrice: 500, MaxPrice: 2000, Limit: 12, Page: 3}.Normalize()

	assert.Equal(t, "Wedding", q.Category)
	assert.Equal(t, "Dhaka", q.Location)
	assert.Equal(t, 500.0, q.MinPrice)
	assert.Equal(t, 2000.0, q.MaxPrice)
	assert.Equal(t, 12, q.Limit)
	assert.Equal(t, 3, q.Page, "page never gets clamped by normalization")
}

func TestNormalizeCapsLimit(t *testing.T) {
	q := Query{Limit: 500}.Normalize()
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		limit      int
		offset     int
		totalPages int
		ok         bool
	}{
		{"first page", 13, 1, 6, 0, 3, true},
		{"middle page", 13, 2, 6, 6, 3, true},
		{"last partial page", 13, 3, 6, 12, 3, true},
		{"page past the end is empty", 13, 4, 6, 0, 3, false},
		{"page zero is empty", 13, 0, 6, 0, 3, false},
		{"negative page is empty", 13, -2, 6, 0, 3, false},
		{"exact multiple", 12, 2, 6, 6, 2, true},
		{"empty result set", 0, 1, 6, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, totalPages, ok := Window(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.totalPages, totalPages)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
