package v1

import (
	"errors"
	"net/http"

	"github.com/banktrack/backend/internal/httputil"
	"github.com/banktrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrBankHasTransactions) || errors.Is(err, models.ErrBalanceLimit) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// httpError writes the error response for err.
func httpError(c *gin.Context, err error) {
	httputil.NewError(c, status(err), err)
}
