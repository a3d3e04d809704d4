package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/banktrack/backend/internal/controllers/v1"
	"github.com/banktrack/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestOptions verifies that the allowed methods are returned for all collections
// and for existing resources.
func (suite *TestSuiteStandard) TestOptions() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/banks", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{transaction.Data.Bank.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{category.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{transaction.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{fmt.Sprintf("http://example.com/v1/banks/%s", uuid.New()), http.StatusNotFound, ""},
		{fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), http.StatusNotFound, ""},
		{fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound, ""},
		{"http://example.com/v1/banks/NotParseableAsUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
