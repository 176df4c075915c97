// Package substitute checks the colleagues nominated to cover a leave.
package substitute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/request"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

type RecordSource interface {
	FindRecords(ctx context.Context, f request.RecordFilter) ([]request.Record, error)
	NominationsBy(ctx context.Context, nominatorID, substituteID uuid.UUID, start, end time.Time) ([]request.Record, error)
}

type Validator struct {
	users   UserLookup
	records RecordSource
	logger  *zap.Logger
}

func NewValidator(users UserLookup, records RecordSource, logger ...*zap.Logger) *Validator {
	l := zap.L().Named("substitute.validator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("substitute.validator")
	}
	return &Validator{users: users, records: records, logger: l}
}

// Validate returns one error per offending substitute. Duplicates are
// reported once for the whole list; each distinct substitute then stops at
// its first failing rule.
func (v *Validator) Validate(ctx context.Context, requesterID uuid.UUID, sel calendar.Selection, substituteIDs []uuid.UUID) (validation.Errors, error) {
	var errs validation.Errors

	unique := make([]uuid.UUID, 0, len(substituteIDs))
	seen := make(map[uuid.UUID]struct{}, len(substituteIDs))
	duplicated := false
	for _, id := range substituteIDs {
		if _, ok := seen[id]; ok {
			duplicated = true
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if duplicated {
		errs.Add(validation.FieldSubstitutes, validation.CodeDuplicateSubstitutes,
			"the same substitute is listed more than once")
	}

	for _, id := range unique {
		e, err := v.checkOne(ctx, requesterID, sel, id)
		if err != nil {
			return nil, err
		}
		if e != nil {
			errs = append(errs, *e)
		}
	}
	return errs, nil
}

func (v *Validator) checkOne(ctx context.Context, requesterID uuid.UUID, sel calendar.Selection, substituteID uuid.UUID) (*validation.Error, error) {
	fail := func(code validation.Code, format string, args ...any) *validation.Error {
		return &validation.Error{Field: validation.FieldSubstitutes, Code: code, Message: fmt.Sprintf(format, args...)}
	}

	if substituteID == requesterID {
		return fail(validation.CodeSelfSubstitution, "you cannot be your own substitute"), nil
	}

	sub, err := v.users.FindByID(ctx, substituteID)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) || (err == nil && !sub.IsActive) {
		return fail(validation.CodeSubstituteInactive, "substitute %s is inactive or does not exist", substituteID), nil
	}
	if err != nil {
		return nil, err
	}

	start, end := sel.Bounds()

	nominations, err := v.records.NominationsBy(ctx, substituteID, requesterID, start, end)
	if err != nil {
		return nil, err
	}
	for _, n := range nominations {
		if calendar.Overlaps(sel, n.Selection()) {
			return fail(validation.CodeCircularSubstitution,
				"%s already named you as substitute on %s for overlapping days", sub.FullName, n.Number), nil
		}
	}

	records, err := v.records.FindRecords(ctx, request.RecordFilter{
		UserID:   substituteID,
		Statuses: request.ActiveStatuses,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if !calendar.Overlaps(sel, r.Selection()) {
			continue
		}
		if r.Kind == request.KindLeave {
			return fail(validation.CodeSubstituteUnavailable,
				"%s is on leave (%s) during the requested days", sub.FullName, r.Number), nil
		}
		if r.Status == request.StatusApproved {
			v.logger.Warn("substitute works from home during the requested days",
				zap.String("substitute_id", substituteID.String()),
				zap.String("wfh_number", r.Number),
			)
		}
	}
	return nil, nil
}
