package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldViolation mirrors the {field, message, code} triple returned by the
// domain validators so binding failures and rule failures look the same.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding error into a 400 AppError listing
// every failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	violations := make([]FieldViolation, 0, len(errs))
	for _, e := range errs {
		human := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			violations = append(violations, FieldViolation{
				Field:   e.Field(),
				Message: RequiredField(human).Message,
				Code:    "REQUIRED",
			})
		case "min", "max", "len":
			violations = append(violations, FieldViolation{
				Field:   e.Field(),
				Message: fmt.Sprintf("%s must satisfy %s=%s", human, e.Tag(), e.Param()),
				Code:    "INVALID_LENGTH",
			})
		default:
			violations = append(violations, FieldViolation{
				Field:   e.Field(),
				Message: InvalidField(human).Message,
				Code:    "INVALID",
			})
		}
	}

	return ErrInvalidInput.WithDetails(violations)
}
