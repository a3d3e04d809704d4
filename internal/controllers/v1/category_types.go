package v1

import (
	"fmt"

	"github.com/banktrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" binding:"required,min=3,max=255" example:"Groceries"` // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

// CategoryPatch contains the parameters that can be updated
type CategoryPatch struct {
	Name *string `json:"name" binding:"omitempty,min=3,max=255" example:"Groceries"` // Name of the category
}

func (patch CategoryPatch) model() models.Category {
	return models.Category{
		Name: valueOf(patch.Name),
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`       // List of Categories
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the Category
}
