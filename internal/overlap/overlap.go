// Package overlap finds a user's active requests that share days with a
// candidate selection.
package overlap

import (
	"context"
	"fmt"
	"strings"

	"go-leave/internal/calendar"
	"go-leave/internal/request"
	"go-leave/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Finder is the read side of request.Repository this package needs.
type Finder interface {
	FindRecords(ctx context.Context, f request.RecordFilter) ([]request.Record, error)
}

type Conflict struct {
	Kind   request.Kind `json:"kind"`
	ID     string       `json:"id"`
	Number string       `json:"number"`
	Start  string       `json:"start_date"`
	End    string       `json:"end_date"`
	Status string       `json:"status"`
}

type Detector struct {
	finder Finder
	logger *zap.Logger
}

func NewDetector(finder Finder, logger ...*zap.Logger) *Detector {
	l := zap.L().Named("overlap.detector")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overlap.detector")
	}
	return &Detector{finder: finder, logger: l}
}

// Find returns the active records of userID, of the given kinds, whose days
// intersect sel. excludeID skips the request being edited.
func (d *Detector) Find(ctx context.Context, userID uuid.UUID, sel calendar.Selection, kinds []request.Kind, excludeID *uuid.UUID) ([]Conflict, error) {
	start, end := sel.Bounds()
	if end.Before(start) {
		return nil, nil
	}

	candidates, err := d.finder.FindRecords(ctx, request.RecordFilter{
		UserID:    userID,
		Kinds:     kinds,
		Statuses:  request.ActiveStatuses,
		Start:     start,
		End:       end,
		ExcludeID: excludeID,
	})
	if err != nil {
		d.logger.Error("overlap lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	var out []Conflict
	for _, rec := range candidates {
		if !calendar.Overlaps(sel, rec.Selection()) {
			continue
		}
		out = append(out, Conflict{
			Kind:   rec.Kind,
			ID:     rec.ID.String(),
			Number: rec.Number,
			Start:  calendar.Format(rec.StartDate),
			End:    calendar.Format(rec.EndDate),
			Status: string(rec.Status),
		})
	}
	return out, nil
}

// CheckOverlap reports OVERLAPPING_REQUESTS against requests of the same kind.
func (d *Detector) CheckOverlap(ctx context.Context, kind request.Kind, userID uuid.UUID, sel calendar.Selection, excludeID *uuid.UUID) (validation.Errors, error) {
	conflicts, err := d.Find(ctx, userID, sel, []request.Kind{kind}, excludeID)
	if err != nil || len(conflicts) == 0 {
		return nil, err
	}
	return validation.Single(validation.FieldStartDate, validation.CodeOverlappingRequests,
		"overlaps existing requests: "+describe(conflicts)), nil
}

// CheckLeaveConflict reports LEAVE_CONFLICT against requests of the other
// kind: a WFH day cannot fall on leave and vice versa.
func (d *Detector) CheckLeaveConflict(ctx context.Context, kind request.Kind, userID uuid.UUID, sel calendar.Selection, excludeID *uuid.UUID) (validation.Errors, error) {
	other := request.KindWFH
	if kind == request.KindWFH {
		other = request.KindLeave
	}
	conflicts, err := d.Find(ctx, userID, sel, []request.Kind{other}, excludeID)
	if err != nil || len(conflicts) == 0 {
		return nil, err
	}

	msg := "conflicts with work-from-home requests: "
	if other == request.KindLeave {
		msg = "conflicts with leave requests: "
	}
	return validation.Single(validation.FieldStartDate, validation.CodeLeaveConflict, msg+describe(conflicts)), nil
}

func describe(conflicts []Conflict) string {
	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = fmt.Sprintf("%s (%s to %s)", c.Number, c.Start, c.End)
	}
	return strings.Join(parts, ", ")
}
