package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and details", func(t *testing.T) {
		err := apperror.ErrValidationFailed.WithDetails([]string{"x"})

		got := apperror.ToHTTP(fmt.Errorf("submit: %w", err))

		assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
		assert.Equal(t, apperror.CodeValidationFailed, got.Code)
		assert.Equal(t, []string{"x"}, got.Details)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})

	t.Run("copy with details still matches sentinel", func(t *testing.T) {
		err := apperror.ErrRateLimited.WithDetails(map[string]int{"retry_after_seconds": 3})
		assert.True(t, errors.Is(err, apperror.ErrRateLimited))
		assert.False(t, errors.Is(err, apperror.ErrForbidden))
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveTypeID string `json:"leave_type_id" validate:"required"`
		Location    string `json:"location" validate:"max=3"`
	}

	v := validator.New()
	apperror.RegisterJSONTagNames(v)
	err := v.Struct(payload{Location: "too long"})

	mapped := apperror.MapValidationError(err)

	httpErr := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	violations, ok := httpErr.Details.([]apperror.FieldViolation)
	assert.True(t, ok)
	assert.Len(t, violations, 2)
	assert.Equal(t, "leave_type_id", violations[0].Field)
	assert.Equal(t, "REQUIRED", violations[0].Code)
	assert.Equal(t, "Leave Type Id is required", violations[0].Message)
	assert.Equal(t, "INVALID_LENGTH", violations[1].Code)
}
