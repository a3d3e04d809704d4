package v1

import (
	"fmt"

	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BankEditable represents all user configurable parameters
type BankEditable struct {
	Name           string `json:"name" binding:"required,min=3,max=255" example:"Checking account"`            // Name of the bank
	Address        string `json:"address" binding:"required,min=3,max=255" example:"Main Street 1, Springfield"` // Address of the bank
	RegisterNumber string `json:"registerNumber" binding:"required,min=3,max=255" example:"DE-4711-0815"`       // Number of the bank in the bank register
}

// BankCreate contains the parameters for a new bank
type BankCreate struct {
	BankEditable
	Balance *decimal.Decimal `json:"balance" binding:"omitempty,money" swaggertype:"string" example:"1250.5" default:"0"` // Initial balance of the bank
}

func (create BankCreate) model() models.Bank {
	bank := models.Bank{
		Name:           create.Name,
		Address:        create.Address,
		RegisterNumber: create.RegisterNumber,
	}

	if create.Balance != nil {
		bank.Balance = types.NewMoney(*create.Balance)
	}

	return bank
}

// BankPatch contains the parameters that can be updated. Balances only change with transactions.
type BankPatch struct {
	Name           *string `json:"name" binding:"omitempty,min=3,max=255" example:"Checking account"`            // Name of the bank
	Address        *string `json:"address" binding:"omitempty,min=3,max=255" example:"Main Street 1, Springfield"` // Address of the bank
	RegisterNumber *string `json:"registerNumber" binding:"omitempty,min=3,max=255" example:"DE-4711-0815"`       // Number of the bank in the bank register
}

func (patch BankPatch) model() models.Bank {
	return models.Bank{
		Name:           valueOf(patch.Name),
		Address:        valueOf(patch.Address),
		RegisterNumber: valueOf(patch.RegisterNumber),
	}
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type BankLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/banks/3b1ea324-d438-4419-882a-2fc91d71772f"` // The bank itself
}

// Bank is the representation of a Bank in API v1.
type Bank struct {
	models.DefaultModel
	BankEditable
	Balance types.Money `json:"balance" swaggertype:"string" example:"1250.5"` // Current balance of the bank
	Links   BankLinks   `json:"links"`
}

func newBank(c *gin.Context, model models.Bank) Bank {
	url := c.GetString(string(models.DBContextURL))

	return Bank{
		DefaultModel: model.DefaultModel,
		BankEditable: BankEditable{
			Name:           model.Name,
			Address:        model.Address,
			RegisterNumber: model.RegisterNumber,
		},
		Balance: model.Balance,
		Links: BankLinks{
			Self: fmt.Sprintf("%s/v1/banks/%s", url, model.ID),
		},
	}
}

type BankListResponse struct {
	Data       []Bank      `json:"data"`       // List of Banks
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type BankResponse struct {
	Data Bank `json:"data"` // Data for the Bank
}
