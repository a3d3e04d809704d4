package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/banktrack/backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error  string              `json:"error" example:"the specified resource ID is not a valid UUID"`
	Fields map[string][]string `json:"fields,omitempty"` // Violated rules for each invalid field of the request body
}

// NewError writes the error as response body with the given status.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}

	var validationError ValidationError
	if errors.As(err, &validationError) {
		e.Fields = validationError.Fields
	}

	c.JSON(status, e)
}

// ValidationError is returned when a request body violates validation rules.
type ValidationError struct {
	// Messages for all violated rules, by JSON field name
	Fields map[string][]string
}

// newValidationError collects the messages for all violations.
func newValidationError(errs validator.ValidationErrors) ValidationError {
	fields := make(map[string][]string)
	for _, e := range errs {
		field := validation.Field(e)
		fields[field] = append(fields[field], validation.Message(e))
	}

	return ValidationError{Fields: fields}
}

func (e ValidationError) Error() string {
	names := maps.Keys(e.Fields)
	slices.Sort(names)

	var messages []string
	for _, name := range names {
		messages = append(messages, e.Fields[name]...)
	}

	return fmt.Sprintf("the request body is invalid: %s", strings.Join(messages, ", "))
}
