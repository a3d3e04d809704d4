// Package validation registers the validation rules for request bodies
// and turns violations into messages for API users.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/banktrack/backend/internal/models"
	"github.com/banktrack/backend/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var elementIndex = regexp.MustCompile(`\[\d+\]$`)

// Register adds the custom rules to the validator.
//
// The "exists" rule checks that a string is the ID of an existing resource.
// Its parameter is the kind of resource, "bank" or "category".
//
// The "money" rule checks that a decimal.Decimal is a valid amount.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(decimalString, decimal.Decimal{})

	if err := v.RegisterValidation("exists", exists); err != nil {
		return fmt.Errorf("could not register exists validation: %w", err)
	}

	if err := v.RegisterValidation("money", money); err != nil {
		return fmt.Errorf("could not register money validation: %w", err)
	}

	return nil
}

// jsonName uses the name of the field in JSON for validation errors.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// decimalString makes the validator treat decimals as strings instead of structs.
func decimalString(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

func exists(fl validator.FieldLevel) bool {
	id := fl.Field().String()

	switch fl.Param() {
	case "bank":
		return models.Exists[models.Bank](models.DB, id)
	case "category":
		return models.Exists[models.Category](models.DB, id)
	case "transaction":
		return models.Exists[models.Transaction](models.DB, id)
	}

	return false
}

func money(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return types.ValidateAmount(d) == nil
}

// Field returns the name of the field an error is for. Errors for
// elements of a list use the name of the list.
func Field(e validator.FieldError) string {
	return elementIndex.ReplaceAllString(e.Field(), "")
}

// Message returns a human readable message for the error.
func Message(e validator.FieldError) string {
	field := Field(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s elements", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s characters", field, e.Param())
	case "uuid":
		if field != e.Field() {
			return fmt.Sprintf("%s must only contain valid UUIDs", field)
		}
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "exists":
		return fmt.Sprintf("%s field must refer to an existing %s", field, e.Param())
	case "money":
		return fmt.Sprintf("%s must be a non-negative amount with at most %d decimal places, not larger than %s", field, types.MoneyScale, types.MaxMoney)
	}

	return fmt.Sprintf("%s is not valid", field)
}
