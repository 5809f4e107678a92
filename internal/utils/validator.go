// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("username", validateUsername)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()

	// Username should be alphanumeric and underscores, 3-50 characters
	if len(username) < 3 || len(username) > 50 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

// FieldErrors maps a field name to its validation messages, mirroring the
// per-field detail the API returns on 400s.
type FieldErrors map[string][]string

func GetFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	fieldErrors := make(FieldErrors)
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			fieldErrors[field] = append(fieldErrors[field], getValidationMessage(e))
		}
		return fieldErrors
	}

	fieldErrors["non_field_errors"] = []string{err.Error()}
	return fieldErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "max":
		return "Ensure this value is less than or equal to " + e.Param() + "."
	case "gte":
		return "Ensure this value is greater than or equal to " + e.Param() + "."
	case "username":
		return "Username must be 3-50 characters and contain only letters, numbers, and underscores."
	default:
		return "This value is invalid."
	}
}
