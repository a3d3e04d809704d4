package models

import (
	"fmt"

	"github.com/banktrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeProfitable TransactionType = "profitable"
	TransactionTypeConsumable TransactionType = "consumable"
)

// Transaction moves an amount on a bank. Its amount is added to the
// balance of the bank when it is created and subtracted again when it
// is deleted.
type Transaction struct {
	DefaultModel
	Amount     types.Money     `json:"amount" gorm:"not null" swaggertype:"string" example:"14.99"`
	Type       TransactionType `json:"type" gorm:"not null;check:transaction_type_valid,type IN ('profitable', 'consumable')" example:"consumable"`
	BankID     uuid.UUID       `json:"bankId" gorm:"not null;index" example:"8e16b456-a719-4ee9-8da2-d0b5fe5bd3f1"`
	Bank       Bank            `json:"bank"`
	Categories []Category      `json:"categories" gorm:"many2many:transaction_categories"`
}

// AfterCreate adds the amount of the transaction to the balance of its bank.
//
// The hook runs inside the transaction that creates the resource, a failure
// here rolls back the creation.
func (t *Transaction) AfterCreate(tx *gorm.DB) error {
	updated, err := adjustBalance(tx, t.BankID, t.Amount.Minor())
	if err != nil {
		return err
	}

	if updated == 0 {
		var count int64
		err := tx.Model(&Bank{}).Where("id = ?", t.BankID).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrBalanceLimit
		}

		return fmt.Errorf("%w bank matching your query", ErrResourceNotFound)
	}

	balanceUpdates.WithLabelValues(string(t.Type), "increment").Inc()
	return nil
}

// AfterDelete subtracts the amount of the transaction from the balance of its bank.
//
// The transaction must have been loaded before deleting it. If it was
// already deleted, nothing happens. If the bank does not exist anymore,
// there is no balance to correct.
func (t *Transaction) AfterDelete(tx *gorm.DB) error {
	if tx.Statement.RowsAffected == 0 {
		log.Debug().Str("transaction", t.ID.String()).Msg("transaction was already deleted, balance not updated")
		return nil
	}

	updated, err := adjustBalance(tx, t.BankID, -t.Amount.Minor())
	if err != nil {
		return err
	}

	if updated == 0 {
		log.Debug().Str("transaction", t.ID.String()).Str("bank", t.BankID.String()).Msg("bank of deleted transaction does not exist, balance not updated")
		return nil
	}

	balanceUpdates.WithLabelValues(string(t.Type), "decrement").Inc()
	return nil
}

// TransactionExists reports whether at least one transaction references the bank.
func TransactionExists(db *gorm.DB, bankID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&Transaction{}).Where(&Transaction{BankID: bankID}).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// WithReferences loads the bank and the categories of transactions.
func WithReferences(db *gorm.DB) *gorm.DB {
	return db.Preload("Bank", func(db *gorm.DB) *gorm.DB {
		return db.Unscoped()
	}).Preload("Categories", InsertionOrder)
}
