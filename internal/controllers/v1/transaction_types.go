package v1

import (
	"fmt"

	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/types"
	"github.com/banktrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	// The maximum value is "100000000000", amounts can have up to 4 decimal places.
	Amount *decimal.Decimal `json:"amount" binding:"required,money" swaggertype:"string" example:"14.99" minimum:"0" maximum:"100000000000" multipleOf:"0.0001"` // The amount of the transaction

	Type        models.TransactionType `json:"type" binding:"required,oneof=profitable consumable" example:"consumable" enums:"profitable,consumable"`           // The type of the transaction
	BankID      string                 `json:"bankId" binding:"required,uuid,exists=bank" example:"8e16b456-a719-4ee9-8da2-d0b5fe5bd3f1"`                         // ID of the bank
	CategoryIDs []string               `json:"categoryIds" binding:"required,min=1,dive,uuid,exists=category" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // IDs of the categories
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() (models.Transaction, error) {
	bankID, err := uuid.Parse(editable.BankID)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		Type:   editable.Type,
		BankID: bankID.UUID,
	}

	if editable.Amount != nil {
		transaction.Amount = types.NewMoney(*editable.Amount)
	}

	for _, id := range editable.CategoryIDs {
		categoryID, err := uuid.Parse(id)
		if err != nil {
			return models.Transaction{}, err
		}

		transaction.Categories = append(transaction.Categories, models.Category{
			DefaultModel: models.DefaultModel{ID: categoryID.UUID},
		})
	}

	return transaction, nil
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Amount     types.Money            `json:"amount" swaggertype:"string" example:"14.99"` // The amount of the transaction
	Type       models.TransactionType `json:"type" example:"consumable"`                   // The type of the transaction
	Bank       Bank                   `json:"bank"`                                        // The bank of the transaction
	Categories []Category             `json:"categories"`                                  // The categories of the transaction
	Links      TransactionLinks       `json:"links"`
}

// newTransaction returns the API v1 representation of the resource. The
// bank and categories must have been loaded.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		Type:         model.Type,
		Bank:         newBank(c, model.Bank),
		Categories:   make([]Category, 0, len(model.Categories)),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	for _, category := range model.Categories {
		transaction.Categories = append(transaction.Categories, newCategory(c, category))
	}

	return transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionResponse struct {
	Data Transaction `json:"data"` // Data for the transaction
}
