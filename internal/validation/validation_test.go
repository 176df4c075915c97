package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("empty list is not an error", func(t *testing.T) {
		var errs validation.Errors
		assert.True(t, errs.Empty())
		assert.NoError(t, errs.Err())
	})

	t.Run("accumulates in order", func(t *testing.T) {
		var errs validation.Errors
		errs.Add(validation.FieldStartDate, validation.CodePastDate, "start date is in the past")
		errs.Addf(validation.FieldEndDate, validation.CodeExceedsMaxDays, "span of %d days exceeds %d", 31, 30)

		assert.Equal(t, []validation.Code{validation.CodePastDate, validation.CodeExceedsMaxDays}, errs.Codes())
		assert.True(t, errs.Has(validation.CodeExceedsMaxDays))
		assert.False(t, errs.Has(validation.CodeBlockedDates))
		assert.Equal(t, "span of 31 days exceeds 30", errs[1].Message)
	})

	t.Run("err maps to 422 with details", func(t *testing.T) {
		errs := validation.Single(validation.FieldLocation, validation.CodeLocationRequired, "location is required")

		err := errs.Err()

		assert.True(t, errors.Is(err, apperror.ErrValidationFailed))
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, errs, httpErr.Details)
	})
}
