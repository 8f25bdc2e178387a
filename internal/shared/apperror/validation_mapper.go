package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	label := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return label + " must be at least " + e.Param() + " characters."
	case "max":
		return label + " must be at most " + e.Param() + " characters."
	case "oneof":
		return label + " must be one of: " + e.Param() + "."
	case "uuid":
		return label + " must be a valid UUID."
	default:
		return label + " is invalid."
	}
}

// MapValidationError turns a binding error into a VALIDATION_ERROR with one
// detail per offending field. The top level message names the first field.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make(map[string]string, len(errs))
		for _, e := range errs {
			details[e.Field()] = fieldMessage(e)
		}

		first := errs[0]
		var base *AppError
		switch first.Tag() {
		case "required":
			base = RequiredField(formatFieldName(first.Field()))
		default:
			base = InvalidField(formatFieldName(first.Field()))
		}
		return base.WithDetails(details)
	}

	return New(
		CodeValidationError,
		"Invalid request body",
		http.StatusBadRequest,
	)
}
