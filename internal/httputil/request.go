package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface
// and validates it.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return newValidationError(validationErrors)
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		// Field is the full path, including the names of embedded structs
		field := jsonUnmarshalTypeError.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}

		return ValidationError{
			Fields: map[string][]string{
				field: {fmt.Sprintf("%s must be of type %s", field, jsonUnmarshalTypeError.Type)},
			},
		}
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// Page returns the page requested with the "page" query parameter.
// If the parameter is not set, the first page is requested.
func Page(c *gin.Context) (int, error) {
	param, ok := c.GetQuery("page")
	if !ok || param == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(param)
	if err != nil {
		return 0, ErrInvalidPage
	}

	return page, nil
}
