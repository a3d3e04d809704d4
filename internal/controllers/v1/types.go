package v1

import (
	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Page     int   `json:"page" example:"2"`      // The page returned
	PageSize int   `json:"pageSize" example:"10"` // The maximum amount of resources on a page
	Count    int   `json:"count" example:"10"`    // The amount of records returned in this response
	Total    int64 `json:"total" example:"827"`   // The total number of resources
}

// newPagination returns the pagination information for a page with count resources.
func newPagination(page, count int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}

	return &Pagination{
		Page:     page,
		PageSize: models.PageSize,
		Count:    count,
		Total:    total,
	}
}
