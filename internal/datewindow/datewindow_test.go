package datewindow_test

import (
	"testing"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/datewindow"
	"go-leave/internal/validation"

	"github.com/stretchr/testify/assert"
)

// Wednesday 2025-06-04.
var fixedNow = time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func d(s string) time.Time {
	t, _ := calendar.ParseDate(s)
	return t
}

func TestValidator_Leave(t *testing.T) {
	v := datewindow.NewValidator(datewindow.LeaveRules(30, 2), datewindow.WithClock(clock))

	t.Run("success", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-06-06"), d("2025-06-10")))
		assert.True(t, errs.Empty())
	})

	t.Run("success current week allowed for leave", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-06-06"), d("2025-06-06")))
		assert.False(t, errs.Has(validation.CodeCurrentWeek))
	})

	t.Run("negative past date also lacks notice", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-06-03"), d("2025-06-05")))
		assert.Equal(t, []validation.Code{validation.CodePastDate, validation.CodeInsufficientNotice}, errs.Codes())
	})

	t.Run("negative today is not past but lacks notice", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-06-04"), d("2025-06-04")))
		assert.Equal(t, []validation.Code{validation.CodeInsufficientNotice}, errs.Codes())
	})

	t.Run("negative inverted range skips span rule", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-07-10"), d("2025-06-10")))
		assert.Equal(t, []validation.Code{validation.CodeInvalidDateRange}, errs.Codes())
	})

	t.Run("negative span of 31 days", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-07-01"), d("2025-07-31")))
		assert.Equal(t, []validation.Code{validation.CodeExceedsMaxDays}, errs.Codes())
	})

	t.Run("span of exactly 30 days", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-07-01"), d("2025-07-30")))
		assert.True(t, errs.Empty())
	})
}

func TestValidator_WFH(t *testing.T) {
	v := datewindow.NewValidator(datewindow.WFHRules(30, 0), datewindow.WithClock(clock))

	t.Run("success next monday", func(t *testing.T) {
		errs := v.Validate(calendar.NewExplicitDays([]time.Time{d("2025-06-09")}))
		assert.True(t, errs.Empty())
	})

	t.Run("negative friday of current week", func(t *testing.T) {
		errs := v.Validate(calendar.NewExplicitDays([]time.Time{d("2025-06-06")}))
		assert.Equal(t, []validation.Code{validation.CodeCurrentWeek}, errs.Codes())
	})

	t.Run("negative sunday still current week", func(t *testing.T) {
		errs := v.Validate(calendar.NewRange(d("2025-06-08"), d("2025-06-10")))
		assert.True(t, errs.Has(validation.CodeCurrentWeek))
	})
}
