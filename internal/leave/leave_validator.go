package leave

import (
	"context"
	"errors"
	"time"

	"go-leave/internal/balance"
	"go-leave/internal/calendar"
	"go-leave/internal/datewindow"
	"go-leave/internal/holiday"
	"go-leave/internal/overlap"
	"go-leave/internal/request"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/substitute"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeaveInput struct {
	LeaveTypeID   uuid.UUID
	Selection     calendar.Selection
	SubstituteIDs []uuid.UUID
	// ExcludeID skips an existing request in the overlap checks.
	ExcludeID *uuid.UUID
}

// Assessment is the outcome of a validation pass. LeaveType and WorkingDays
// are only set when the corresponding lookups succeeded.
type Assessment struct {
	Errors      validation.Errors
	LeaveType   *request.LeaveType
	WorkingDays int
}

func (a Assessment) Valid() bool { return a.Errors.Empty() }

type Validator struct {
	window      *datewindow.Validator
	holidays    holiday.Service
	requests    request.Repository
	overlaps    *overlap.Detector
	substitutes *substitute.Validator
	balances    balance.Service
	now         func() time.Time
	logger      *zap.Logger
}

func NewValidator(
	window *datewindow.Validator,
	holidays holiday.Service,
	requests request.Repository,
	overlaps *overlap.Detector,
	substitutes *substitute.Validator,
	balances balance.Service,
	logger ...*zap.Logger,
) *Validator {
	l := zap.L().Named("leave.validator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.validator")
	}
	return &Validator{
		window:      window,
		holidays:    holidays,
		requests:    requests,
		overlaps:    overlaps,
		substitutes: substitutes,
		balances:    balances,
		now:         time.Now,
		logger:      l,
	}
}

// ValidateLeaveRequest runs every rule and returns all failures together.
// The returned error is reserved for infrastructure failures.
func (v *Validator) ValidateLeaveRequest(ctx context.Context, userID uuid.UUID, in LeaveInput) (validation.Errors, error) {
	a, err := v.Assess(ctx, userID, in)
	return a.Errors, err
}

// Assess validates in the order date window, holidays, duplicates, overlap,
// substitutes, balance. Checks that need a well-formed range are skipped once
// the range itself is invalid.
func (v *Validator) Assess(ctx context.Context, userID uuid.UUID, in LeaveInput) (Assessment, error) {
	logger := contextutil.GetLogger(ctx, v.logger)
	var out Assessment

	lt, err := v.requests.FindLeaveType(ctx, in.LeaveTypeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		out.Errors.Add(validation.FieldLeaveType, validation.CodeLeaveTypeNotFound, "leave type does not exist")
	case err != nil:
		logger.Error("find leave type failed", zap.String("leave_type_id", in.LeaveTypeID.String()), zap.Error(err))
		return out, err
	case !lt.IsActive:
		out.Errors.Add(validation.FieldLeaveType, validation.CodeLeaveTypeNotFound, "leave type is no longer offered")
	default:
		out.LeaveType = lt
	}

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

	if out.LeaveType != nil {
		since := v.now().UTC().Add(-request.DuplicateWindow)
		dup, err := v.requests.HasRecentDuplicate(ctx, request.KindLeave, userID, &out.LeaveType.ID, start, end, since)
		if err != nil {
			logger.Error("duplicate lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
			return out, err
		}
		if dup {
			out.Errors.Add(validation.FieldRequest, validation.CodeDuplicateRequest,
				"an identical leave request was submitted moments ago")
		}
	}

	overlapErrs, err := v.overlaps.CheckOverlap(ctx, request.KindLeave, userID, in.Selection, in.ExcludeID)
	if err != nil {
		return out, err
	}
	out.Errors.Merge(overlapErrs)

	conflictErrs, err := v.overlaps.CheckLeaveConflict(ctx, request.KindLeave, userID, in.Selection, in.ExcludeID)
	if err != nil {
		return out, err
	}
	out.Errors.Merge(conflictErrs)

	switch {
	case len(in.SubstituteIDs) > 0:
		subErrs, err := v.substitutes.Validate(ctx, userID, in.Selection, in.SubstituteIDs)
		if err != nil {
			return out, err
		}
		out.Errors.Merge(subErrs)
	case out.LeaveType != nil && out.LeaveType.RequiresSubstitute:
		out.Errors.Addf(validation.FieldSubstitutes, validation.CodeSubstituteRequired,
			"%s leave needs at least one substitute", out.LeaveType.Name)
	}

	isBlocked, err := v.holidays.BlockedLookup(ctx, in.Selection)
	if err != nil {
		return out, err
	}
	out.WorkingDays = calendar.WorkingDays(in.Selection, isBlocked)
	if out.WorkingDays == 0 {
		out.Errors.Add(validation.FieldStartDate, validation.CodeNoWorkingDays,
			"the selected days contain no working day")
		return out, nil
	}

	if out.LeaveType != nil && out.LeaveType.TracksBalance {
		key := balance.Key{UserID: userID, LeaveTypeID: out.LeaveType.ID, Year: start.Year()}
		balanceErrs, err := v.balances.Check(ctx, key, decimal.NewFromInt(int64(out.WorkingDays)))
		if err != nil {
			return out, err
		}
		out.Errors.Merge(balanceErrs)
	}

	if !out.Valid() {
		logger.Debug("leave request rejected by validation",
			zap.String("user_id", userID.String()),
			zap.Any("codes", out.Errors.Codes()),
		)
	}
	return out, nil
}
