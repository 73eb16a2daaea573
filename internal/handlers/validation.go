package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationErrorMap flattens validator errors into a field -> message
// map for the JSON error body.
func validationErrorMap(err error) map[string]string {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return errorMessages
}
