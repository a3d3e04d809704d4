package models

import (
	"github.com/banktrack/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bank is an account at a bank. Its balance changes only when it is
// created and when transactions referencing it are created or deleted.
type Bank struct {
	DefaultModel
	Name           string      `json:"name" example:"Checking account"`
	Address        string      `json:"address" example:"Main Street 1, Springfield"`
	RegisterNumber string      `json:"registerNumber" example:"DE-4711-0815"`
	Balance        types.Money `json:"balance" gorm:"not null;default:0" swaggertype:"string" example:"1250.5"`
}

// adjustBalance adds delta minor units to the balance of the bank in a
// single statement. Deleted banks are not updated, neither are banks
// whose balance would exceed types.MaxBalanceMinor.
//
// It returns the number of banks that were updated.
func adjustBalance(tx *gorm.DB, bankID uuid.UUID, delta int64) (int64, error) {
	query := tx.Model(&Bank{}).Where("id = ?", bankID)
	if delta > 0 {
		query = query.Where("balance <= ?", types.MaxBalanceMinor-delta)
	}

	result := query.Update("balance", gorm.Expr("balance + ?", delta))
	return result.RowsAffected, result.Error
}

// DeleteBank deletes the bank unless at least one transaction references it.
//
// The check and the deletion run in the same database transaction so that
// no transaction can be created for the bank in between.
func DeleteBank(db *gorm.DB, bank Bank) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		referenced, err := TransactionExists(tx, bank.ID)
		if err != nil {
			return err
		}

		if referenced {
			return ErrBankHasTransactions
		}

		return tx.Delete(&bank).Error
	})

	return generalError(err)
}
