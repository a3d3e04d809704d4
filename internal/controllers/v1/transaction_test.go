package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	v1 "github.com/banktrack/backend/internal/controllers/v1"
	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/router"
	"github.com/banktrack/backend/internal/types"
	"github.com/banktrack/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"GET list fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", nil)
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Equal(t, models.ErrGeneral.Error(), decodeError(t, &recorder).Error)
			},
		},
		{
			"DELETE fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), nil)
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
		{
			// References cannot be verified, the request is rejected as invalid
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{BankID: uuid.NewString(), CategoryIDs: []string{uuid.NewString()}}, http.StatusBadRequest)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	bank := createTestBank(suite.T(), v1.BankCreate{Balance: amount("50")})
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	household := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Household"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      amount("14.99"),
		Type:        models.TransactionTypeConsumable,
		BankID:      bank.Data.ID.String(),
		CategoryIDs: []string{household.Data.ID.String(), groceries.Data.ID.String()},
	})

	suite.Assert().Equal("14.99", transaction.Data.Amount.String())
	suite.Assert().Equal(models.TransactionTypeConsumable, transaction.Data.Type)
	suite.Assert().Equal(bank.Data.ID, transaction.Data.Bank.ID)
	suite.Assert().Equal("64.99", transaction.Data.Bank.Balance.String(), "Bank in the response must contain the updated balance")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)

	// Categories are listed in the order they were created
	if suite.Assert().Len(transaction.Data.Categories, 2) {
		suite.Assert().Equal(groceries.Data.ID, transaction.Data.Categories[0].ID)
		suite.Assert().Equal(household.Data.ID, transaction.Data.Categories[1].ID)
	}

	suite.Assert().Equal("64.99", getBank(suite.T(), bank.Data.Links.Self).Balance.String())
}

// TestTransactionsCreateTypes verifies that both types add the amount to the balance.
func (suite *TestSuiteStandard) TestTransactionsCreateTypes() {
	bank := createTestBank(suite.T(), v1.BankCreate{})

	createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Type: models.TransactionTypeProfitable, Amount: amount("100")})
	suite.Assert().Equal("100", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Type: models.TransactionTypeConsumable, Amount: amount("0.5")})
	suite.Assert().Equal("100.5", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Amount: amount("0")})
	suite.Assert().Equal("100.5", getBank(suite.T(), bank.Data.Links.Self).Balance.String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	bank := createTestBank(suite.T(), v1.BankCreate{Balance: amount("10")})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	deletedBank := createTestBank(suite.T(), v1.BankCreate{})
	r := test.Request(suite.T(), http.MethodDelete, deletedBank.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	valid := func() map[string]any {
		return map[string]any{
			"amount":      "10",
			"type":        "consumable",
			"bankId":      bank.Data.ID.String(),
			"categoryIds": []string{category.Data.ID.String()},
		}
	}

	tests := []struct {
		name    string
		modify  func(map[string]any)
		field   string
		message string
	}{
		{"Missing amount", func(b map[string]any) { delete(b, "amount") }, "amount", "amount is required"},
		{"Negative amount", func(b map[string]any) { b["amount"] = "-1" }, "amount", "amount must be a non-negative amount with at most 4 decimal places, not larger than 100000000000"},
		{"Amount too precise", func(b map[string]any) { b["amount"] = "0.00001" }, "amount", "amount must be a non-negative amount with at most 4 decimal places, not larger than 100000000000"},
		{"Amount too large", func(b map[string]any) { b["amount"] = "100000000001" }, "amount", "amount must be a non-negative amount with at most 4 decimal places, not larger than 100000000000"},
		{"Missing type", func(b map[string]any) { delete(b, "type") }, "type", "type is required"},
		{"Unknown type", func(b map[string]any) { b["type"] = "PROFIT" }, "type", "type must be one of: profitable, consumable"},
		{"Missing bank", func(b map[string]any) { delete(b, "bankId") }, "bankId", "bankId is required"},
		{"Invalid bank ID", func(b map[string]any) { b["bankId"] = "not-a-uuid" }, "bankId", "bankId must be a valid UUID"},
		{"Unknown bank", func(b map[string]any) { b["bankId"] = uuid.NewString() }, "bankId", "bankId field must refer to an existing bank"},
		{"Deleted bank", func(b map[string]any) { b["bankId"] = deletedBank.Data.ID.String() }, "bankId", "bankId field must refer to an existing bank"},
		{"Missing categories", func(b map[string]any) { delete(b, "categoryIds") }, "categoryIds", "categoryIds is required"},
		{"No categories", func(b map[string]any) { b["categoryIds"] = []string{} }, "categoryIds", "categoryIds must contain at least 1 elements"},
		{"Invalid category ID", func(b map[string]any) { b["categoryIds"] = []string{category.Data.ID.String(), "12"} }, "categoryIds", "categoryIds must only contain valid UUIDs"},
		{"Unknown category", func(b map[string]any) { b["categoryIds"] = []string{uuid.NewString()} }, "categoryIds", "categoryIds field must refer to an existing category"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := valid()
			tt.modify(body)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := decodeError(t, &r)
			assert.Contains(t, e.Fields[tt.field], tt.message)
			assert.Contains(t, e.Error, tt.message)
		})
	}

	// No invalid request must have changed the balance
	suite.Assert().Equal("10", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Equal(int64(0), list.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken JSON", `{ "amount": `},
		{"Amount is not a number", `{ "amount": "a lot" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			decodeError(t, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: amount("7.5"), Type: models.TransactionTypeProfitable})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Existing", transaction.Data.Links.Self, http.StatusOK},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/transactions/-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				decodeError(t, &r)
				return
			}

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, transaction.Data.ID, response.Data.ID)
			assert.Equal(t, "7.5", response.Data.Amount.String())
			assert.Equal(t, models.TransactionTypeProfitable, response.Data.Type)
			assert.Equal(t, transaction.Data.Bank.ID, response.Data.Bank.ID)
			assert.Len(t, response.Data.Categories, 1)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	bank := createTestBank(suite.T(), v1.BankCreate{})

	var ids []uuid.UUID
	for range models.PageSize + 1 {
		ids = append(ids, createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String()}).Data.ID)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?page=2", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Pagination{Page: 2, PageSize: models.PageSize, Count: 1, Total: int64(models.PageSize + 1)}, *response.Pagination)
	if suite.Assert().Len(response.Data, 1) {
		suite.Assert().Equal(ids[models.PageSize], response.Data[0].ID)
		suite.Assert().Equal(bank.Data.ID, response.Data[0].Bank.ID)
		suite.Assert().Len(response.Data[0].Categories, 1)
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?page=two", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	bank := createTestBank(suite.T(), v1.BankCreate{Balance: amount("5")})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Amount: amount("20.25")})
	suite.Assert().Equal("25.25", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("5", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	// A second deletion must not change the balance again
	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("5", getBank(suite.T(), bank.Data.Links.Self).Balance.String())

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions/abc", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestTransactionsCreateConcurrent verifies that no balance update is lost
// when transactions for the same bank are created in parallel.
func (suite *TestSuiteStandard) TestTransactionsCreateConcurrent() {
	bank := createTestBank(suite.T(), v1.BankCreate{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	body, err := json.Marshal(v1.TransactionEditable{
		Amount:      amount("1.5"),
		Type:        models.TransactionTypeProfitable,
		BankID:      bank.Data.ID.String(),
		CategoryIDs: []string{category.Data.ID.String()},
	})
	suite.Require().Nil(err)

	// All requests share one router, it is not safe to configure routers concurrently
	baseURL, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(baseURL)
	suite.Require().Nil(err)
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			recorder := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "http://example.com/v1/transactions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(recorder, req)

			assert.Equal(suite.T(), http.StatusCreated, recorder.Code, recorder.Body.String())
		}()
	}
	wg.Wait()

	suite.Assert().Equal("15", getBank(suite.T(), bank.Data.Links.Self).Balance.String())
}

// TestTransactionsDeleteConcurrent verifies that the balance is corrected exactly
// once when the same transaction is deleted by parallel requests.
func (suite *TestSuiteStandard) TestTransactionsDeleteConcurrent() {
	bank := createTestBank(suite.T(), v1.BankCreate{Balance: amount("100")})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Amount: amount("40")})

	baseURL, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(baseURL)
	suite.Require().Nil(err)
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	workers := 16
	codes := make(chan int, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			recorder := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, transaction.Data.Links.Self, http.NoBody)
			r.ServeHTTP(recorder, req)
			codes <- recorder.Code
		}()
	}
	wg.Wait()
	close(codes)

	deleted := 0
	for code := range codes {
		if code == http.StatusNoContent {
			deleted++
			continue
		}
		suite.Assert().Equal(http.StatusNotFound, code)
	}

	suite.Assert().Equal(1, deleted)
	suite.Assert().Equal("100", getBank(suite.T(), bank.Data.Links.Self).Balance.String())
}

// TestTransactionsBalanceLimit verifies that transactions which would raise the balance
// above what can be stored are rejected and leave the bank readable.
func (suite *TestSuiteStandard) TestTransactionsBalanceLimit() {
	bank := createTestBank(suite.T(), v1.BankCreate{})
	suite.Require().Nil(models.DB.Model(&models.Bank{}).Where("id = ?", bank.Data.ID).Update("balance", types.MaxBalanceMinor-1).Error)

	createTestTransaction(suite.T(), v1.TransactionEditable{BankID: bank.Data.ID.String(), Amount: amount("0.0001")})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", v1.TransactionEditable{
		Amount:      amount("0.0001"),
		Type:        models.TransactionTypeProfitable,
		BankID:      bank.Data.ID.String(),
		CategoryIDs: []string{createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String()},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Equal(models.ErrBalanceLimit.Error(), decodeError(suite.T(), &r).Error)

	suite.Assert().Equal(types.MaxBalanceMinor, getBank(suite.T(), bank.Data.Links.Self).Balance.Minor())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
