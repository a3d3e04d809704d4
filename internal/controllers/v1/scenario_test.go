package v1_test

import (
	"net/http"

	v1 "github.com/banktrack/backend/internal/controllers/v1"
	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/test"
)

// TestBalanceLifecycle walks through the life of a bank: its balance follows
// the transactions and it can only be deleted while no transaction references it.
func (suite *TestSuiteStandard) TestBalanceLifecycle() {
	bank := createTestBank(suite.T(), v1.BankCreate{
		BankEditable: v1.BankEditable{Name: "test", Address: "test", RegisterNumber: "00000000"},
		Balance:      amount("0"),
	})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salary"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      amount("100"),
		Type:        models.TransactionTypeProfitable,
		BankID:      bank.Data.ID.String(),
		CategoryIDs: []string{category.Data.ID.String()},
	})
	suite.Assert().Equal("100", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("0", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      amount("30"),
		Type:        models.TransactionTypeConsumable,
		BankID:      bank.Data.ID.String(),
		CategoryIDs: []string{category.Data.ID.String()},
	})

	r = test.Request(suite.T(), http.MethodDelete, bank.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Equal("30", getBank(suite.T(), bank.Data.Links.Self).Balance.String())
}
