package v1

import (
	"net/http"

	"github.com/banktrack/backend/internal/httputil"
	"github.com/banktrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBankRoutes registers the routes for banks with
// the RouterGroup that is passed.
func RegisterBankRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankList)
		r.GET("", GetBanks)
		r.POST("", CreateBank)
	}

	// Bank with ID
	{
		r.OPTIONS("/:id", OptionsBankDetail)
		r.GET("/:id", GetBank)
		r.PATCH("/:id", UpdateBank)
		r.DELETE("/:id", DeleteBank)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Router			/v1/banks [options]
func OptionsBankList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [options]
func OptionsBankDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Bank{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create bank
// @Description	Creates a new bank. The balance defaults to 0.
// @Tags			Banks
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			bank	body		BankCreate	true	"Bank"
// @Router			/v1/banks [post]
func CreateBank(c *gin.Context) {
	var create BankCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &create)
	if err != nil {
		httpError(c, err)
		return
	}

	bank := create.model()
	err = models.DB.Create(&bank).Error
	if err != nil {
		httpError(c, err)
		return
	}

	// Read the bank back to get the stored balance
	err = models.DB.First(&bank, bank.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BankResponse{Data: newBank(c, bank)})
}

// @Summary		Get banks
// @Description	Returns a page of banks in the order they were created
// @Tags			Banks
// @Produce		json
// @Success		200		{object}	BankListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			page	query		int	false	"The page to return, starting at 1. Defaults to 1."
// @Router			/v1/banks [get]
func GetBanks(c *gin.Context) {
	banks, page, total, err := findPage[models.Bank](c)
	if err != nil {
		httpError(c, err)
		return
	}

	data := make([]Bank, 0, len(banks))
	for _, bank := range banks {
		data = append(data, newBank(c, bank))
	}

	c.JSON(http.StatusOK, BankListResponse{
		Data:       data,
		Pagination: newPagination(page, len(data), total),
	})
}

// @Summary		Get bank
// @Description	Returns a specific bank
// @Tags			Banks
// @Produce		json
// @Success		200	{object}	BankResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [get]
func GetBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: newBank(c, bank)})
}

// @Summary		Update bank
// @Description	Update an existing bank. Only values to be updated need to be specified. The balance can not be updated.
// @Tags			Banks
// @Accept			json
// @Produce		json
// @Success		200		{object}	BankResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bank	body		BankPatch	true	"Bank"
// @Router			/v1/banks/{id} [patch]
func UpdateBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BankPatch{})
	if err != nil {
		httpError(c, err)
		return
	}

	var data BankPatch
	err = httputil.BindData(c, &data)
	if err != nil {
		httpError(c, err)
		return
	}

	err = models.DB.Model(&bank).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		httpError(c, err)
		return
	}

	// The balance might have changed since the bank was read
	err = models.DB.First(&bank, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: newBank(c, bank)})
}

// @Summary		Delete bank
// @Description	Deletes a bank. Banks that are referenced by transactions can not be deleted.
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		409	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [delete]
func DeleteBank(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httpError(c, err)
		return
	}

	var bank models.Bank
	err = models.DB.First(&bank, uri.ID).Error
	if err != nil {
		httpError(c, err)
		return
	}

	err = models.DeleteBank(models.DB, bank)
	if err != nil {
		httpError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
