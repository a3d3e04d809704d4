package v1

import (
	"fmt"
	"net/http"

	"github.com/banktrack/backend/internal/httputil"
	"github.com/banktrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{}, httputil.OptionsGetDelete)
}

// @Summary		Create transaction
// @Description	Creates a new transaction. The amount is added to the balance of the bank.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		httpError(c, err)
		return
	}

	transaction, err := editable.model()
	if err != nil {
		httpError(c, err)
		return
	}

	// Bank and categories are referenced, not created or updated
	err = models.DB.Omit("Bank", "Categories.*").Create(&transaction).Error
	if err != nil {
		httpError(c, err)
		return
	}

	var created models.Transaction
	err = models.DB.Scopes(models.WithReferences).First(&created, transaction.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(c, created)})
}

// @Summary		Get transactions
// @Description	Returns a page of transactions in the order they were created
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			page	query		int	false	"The page to return, starting at 1. Defaults to 1."
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	transactions, page, total, err := findPage[models.Transaction](c, models.WithReferences)
	if err != nil {
		httpError(c, err)
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       data,
		Pagination: newPagination(page, len(data), total),
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.Scopes(models.WithReferences).First(&transaction, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. The amount is subtracted from the balance of the bank.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	result := models.DB.Delete(&transaction)
	if result.Error != nil {
		httpError(c, result.Error)
		return
	}

	// A concurrent request deleted it after it was read
	if result.RowsAffected == 0 {
		httpError(c, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound))
		return
	}

	c.Status(http.StatusNoContent)
}
