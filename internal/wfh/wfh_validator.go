package wfh

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go-leave/internal/calendar"
	"go-leave/internal/datewindow"
	"go-leave/internal/holiday"
	"go-leave/internal/overlap"
	"go-leave/internal/request"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MinLocationLength = 3
	MaxLocationLength = 200
)

type WFHInput struct {
	Selection calendar.Selection
	Location  string
	ExcludeID *uuid.UUID
}

type Assessment struct {
	Errors      validation.Errors
	WorkingDays int
}

func (a Assessment) Valid() bool { return a.Errors.Empty() }

type Validator struct {
	window   *datewindow.Validator
	holidays holiday.Service
	requests request.Repository
	overlaps *overlap.Detector
	now      func() time.Time
	logger   *zap.Logger
}

func NewValidator(
	window *datewindow.Validator,
	holidays holiday.Service,
	requests request.Repository,
	overlaps *overlap.Detector,
	logger ...*zap.Logger,
) *Validator {
	l := zap.L().Named("wfh.validator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wfh.validator")
	}
	return &Validator{
		window:   window,
		holidays: holidays,
		requests: requests,
		overlaps: overlaps,
		now:      time.Now,
		logger:   l,
	}
}

// ValidateLocation checks the trimmed location length in characters.
func ValidateLocation(location string) validation.Errors {
	n := utf8.RuneCountInString(strings.TrimSpace(location))
	switch {
	case n == 0:
		return validation.Single(validation.FieldLocation, validation.CodeLocationRequired, "location is required")
	case n < MinLocationLength:
		return validation.Single(validation.FieldLocation, validation.CodeLocationTooShort,
			"location must be at least 3 characters")
	case n > MaxLocationLength:
		return validation.Single(validation.FieldLocation, validation.CodeLocationTooLong,
			"location must be at most 200 characters")
	}
	return nil
}

func (v *Validator) ValidateWFHRequest(ctx context.Context, userID uuid.UUID, in WFHInput) (validation.Errors, error) {
	a, err := v.Assess(ctx, userID, in)
	return a.Errors, err
}

// Assess runs location, date window, holiday, duplicate and overlap checks
// and counts the working days. Substitutes and balances do not apply.
func (v *Validator) Assess(ctx context.Context, userID uuid.UUID, in WFHInput) (Assessment, error) {
	logger := contextutil.GetLogger(ctx, v.logger)
	var out Assessment

	out.Errors.Merge(ValidateLocation(in.Location))
	out.Errors.Merge(v.window.Validate(in.Selection))
	if out.Errors.Has(validation.CodeInvalidDateRange) {
		return out, nil
	}
	start, end := in.Selection.Bounds()

	holidayErrs, err := v.holidays.Validate(ctx, in.Selection)
	if err != nil {
		return out, err
	}
	out.Errors.Merge(holidayErrs)

	since := v.now().UTC().Add(-request.DuplicateWindow)
	dup, err := v.requests.HasRecentDuplicate(ctx, request.KindWFH, userID, nil, start, end, since)
	if err != nil {
		logger.Error("duplicate lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		return out, err
	}
	if dup {
		out.Errors.Add(validation.FieldRequest, validation.CodeDuplicateRequest,
			"an identical work from home request was submitted moments ago")
	}

	overlapErrs, err := v.overlaps.CheckOverlap(ctx, request.KindWFH, userID, in.Selection, in.ExcludeID)
	if err != nil {
		return out, err
	}
	out.Errors.Merge(overlapErrs)

	conflictErrs, err := v.overlaps.CheckLeaveConflict(ctx, request.KindWFH, userID, in.Selection, in.ExcludeID)
	if err != nil {
		return out, err
	}
	out.Errors.Merge(conflictErrs)

	isBlocked, err := v.holidays.BlockedLookup(ctx, in.Selection)
	if err != nil {
		return out, err
	}
	out.WorkingDays = calendar.WorkingDays(in.Selection, isBlocked)
	if out.WorkingDays == 0 {
		out.Errors.Add(validation.FieldStartDate, validation.CodeNoWorkingDays,
			"the selected days contain no working day")
	}
	return out, nil
}
