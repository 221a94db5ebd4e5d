// Package catalog implements the filtered, paginated query surface over the
// decoration service collection. Filters are AND-composed; pagination is
// 1-indexed with out-of-range pages resolving to an empty item set.
package catalog

import (
	"strings"

	"gorm.io/gorm"
)

const (
	// DefaultLimit matches the storefront grid size.
	DefaultLimit = 6
	// MaxLimit caps a caller-supplied page size.
	MaxLimit = 50
	// AnyLocation is the sentinel the storefront sends for "no location
	// constraint".
	AnyLocation = "All"
)

// Query is one catalog request. Zero values mean "no constraint" for every
// filter; Page <= 0 means "unpaginated" (featured-style listing).
type Query struct {
	Search   string
	Category string
	Location string
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}

// Normalize folds sentinel filter values into their zero forms and bounds the
// page size. Page is deliberately left untouched: a page beyond the last one
// must yield an empty result, not get clamped back into range.
func (q Query) Normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	if strings.EqualFold(q.Location, AnyLocation) {
		q.Location = ""
	}
	if strings.EqualFold(q.Category, "All") {
		q.Category = ""
	}
	if q.MinPrice < 0 {
		q.MinPrice = 0
	}
	if q.MaxPrice < 0 {
		q.MaxPrice = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Apply composes the normalized filters onto a gorm query. Price bounds are
// inclusive; MaxPrice == 0 is treated as unbounded.
func (q Query) Apply(db *gorm.DB) *gorm.DB {
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Location != "" {
		db = db.Where("location = ?", q.Location)
	}
	if q.MinPrice > 0 {
		db = db.Where("cost >= ?", q.MinPrice)
	}
	if q.MaxPrice > 0 {
		db = db.Where("cost <= ?", q.MaxPrice)
	}
	return db
}

// Window computes the pagination window for a filtered total. ok is false when
// the requested page falls outside [1, totalPages]; callers then return an
// empty item set rather than an error.
func Window(total int64, page, limit int) (offset, totalPages int, ok bool) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	totalPages = int((total + int64(limit) - 1) / int64(limit))
	if page < 1 || page > totalPages {
		return 0, totalPages, false
	}
	return (page - 1) * limit, totalPages, true
}
