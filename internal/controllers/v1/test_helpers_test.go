package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/banktrack/backend/internal/controllers/v1"
	"github.com/banktrack/backend/internal/httputil"
	"github.com/banktrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// createTestBank creates a bank through the API. Empty fields are filled with valid values.
func createTestBank(t *testing.T, c v1.BankCreate, expectedStatus ...int) v1.BankResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.Address == "" {
		c.Address = "Main Street 1, Springfield"
	}

	if c.RegisterNumber == "" {
		c.RegisterNumber = "DE-4711-0815"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/banks", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var bank v1.BankResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &bank)
	}

	return bank
}

// createTestCategory creates a category through the API.
func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &category)
	}

	return category
}

// createTestTransaction creates a transaction through the API. A bank and a category
// are created when none are referenced.
func createTestTransaction(t *testing.T, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.BankID == "" {
		c.BankID = createTestBank(t, v1.BankCreate{}).Data.ID.String()
	}

	if c.CategoryIDs == nil {
		c.CategoryIDs = []string{createTestCategory(t, v1.CategoryEditable{}).Data.ID.String()}
	}

	if c.Amount == nil {
		c.Amount = amount("10")
	}

	if c.Type == "" {
		c.Type = "consumable"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &transaction)
	}

	return transaction
}

// getBank reads a bank through the API.
func getBank(t *testing.T, url string) v1.Bank {
	r := test.Request(t, http.MethodGet, url, nil)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var bank v1.BankResponse
	test.DecodeResponse(t, &r, &bank)

	return bank.Data
}

// decodeError decodes an error response and checks that the error is set.
func decodeError(t *testing.T, r *httptest.ResponseRecorder) httputil.HTTPError {
	var e httputil.HTTPError
	test.DecodeResponse(t, r, &e)
	require.NotEmpty(t, e.Error, "error response without message")

	return e
}
