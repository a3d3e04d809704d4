package v1

import (
	"github.com/banktrack/backend/internal/httputil"
	"github.com/banktrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Resource](c *gin.Context, resource R, options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	options(c)
}

// findPage returns the page of resources requested with the "page" query parameter,
// the page number and the total number of resources.
//
// Resources are returned in the order they were created.
func findPage[R models.Resource](c *gin.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]R, int, int64, error) {
	p, err := httputil.Page(c)
	if err != nil {
		return nil, 0, 0, err
	}

	var resources []R
	err = models.DB.Scopes(append(scopes, models.InsertionOrder, models.Page(p))...).Find(&resources).Error
	if err != nil {
		return nil, 0, 0, err
	}

	var total int64
	err = models.DB.Model(new(R)).Count(&total).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return resources, p, total, nil
}
