package models

import (
	"math"

	"gorm.io/gorm"
)

// PageSize is the number of resources on one page of a list.
const PageSize = 10

// PageOffset returns the number of resources to skip for a page. Pages
// are counted from 1, smaller values return the first page.
func PageOffset(page int) int {
	if page < 1 {
		return 0
	}

	if page > math.MaxInt/PageSize {
		return math.MaxInt / PageSize * PageSize
	}

	return (page - 1) * PageSize
}

// Page limits a query to one page of resources.
func Page(page int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(PageOffset(page)).Limit(PageSize)
	}
}

// InsertionOrder sorts resources in the order they were created.
func InsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("rowid ASC")
}
