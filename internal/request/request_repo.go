package request

import (
	"context"
	"time"

	"go-leave/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordFilter selects a user's requests across both kinds. Zero Start/End
// means no date restriction; nil Kinds means both kinds.
type RecordFilter struct {
	UserID    uuid.UUID
	Kinds     []Kind
	Statuses  []Status
	Start     time.Time
	End       time.Time
	ExcludeID *uuid.UUID
}

func (f RecordFilter) wants(k Kind) bool {
	if len(f.Kinds) == 0 {
		return true
	}
	for _, v := range f.Kinds {
		if v == k {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateLeave(ctx context.Context, r *LeaveRequest) error
	CreateWFH(ctx context.Context, r *WorkFromHomeRequest) error
	FindLeaveByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindWFHByID(ctx context.Context, id uuid.UUID) (*WorkFromHomeRequest, error)
	FindRecord(ctx context.Context, kind Kind, id uuid.UUID) (*Record, error)
	ListLeavesByUser(ctx context.Context, userID uuid.UUID, statuses []Status) ([]LeaveRequest, error)
	ListWFHByUser(ctx context.Context, userID uuid.UUID, statuses []Status) ([]WorkFromHomeRequest, error)

	FindRecords(ctx context.Context, f RecordFilter) ([]Record, error)
	// NominationsBy returns active leave requests of nominatorID that list
	// substituteID as a substitute and intersect [start, end].
	NominationsBy(ctx context.Context, nominatorID, substituteID uuid.UUID, start, end time.Time) ([]Record, error)
	HasRecentDuplicate(ctx context.Context, kind Kind, userID uuid.UUID, leaveTypeID *uuid.UUID, start, end, since time.Time) (bool, error)

	// TransitionStatus moves the request to `to` only while it is in one of
	// `from`; false means another writer got there first.
	TransitionStatus(ctx context.Context, kind Kind, id uuid.UUID, from []Status, to Status, at time.Time) (bool, error)

	FindLeaveType(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	ListActiveLeaveTypes(ctx context.Context) ([]LeaveType, error)
	LeaveDayTotals(ctx context.Context, year int) ([]DayTotal, error)

	ArchiveEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	PurgeCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateLeave(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) CreateWFH(ctx context.Context, req *WorkFromHomeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindLeaveByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).Preload("Substitutes").First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindWFHByID(ctx context.Context, id uuid.UUID) (*WorkFromHomeRequest, error) {
	var req WorkFromHomeRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindRecord(ctx context.Context, kind Kind, id uuid.UUID) (*Record, error) {
	switch kind {
	case KindLeave:
		req, err := r.FindLeaveByID(ctx, id)
		if err != nil {
			return nil, err
		}
		rec := req.Record()
		return &rec, nil
	default:
		req, err := r.FindWFHByID(ctx, id)
		if err != nil {
			return nil, err
		}
		rec := req.Record()
		return &rec, nil
	}
}

func (r *repository) ListLeavesByUser(ctx context.Context, userID uuid.UUID, statuses []Status) ([]LeaveRequest, error) {
	var out []LeaveRequest
	q := r.db.WithContext(ctx).
		Preload("Substitutes").
		Scopes(scope.ForUser(userID.String()), scope.NotArchived)
	if len(statuses) > 0 {
		q = q.Scopes(scope.WithStatus(StatusStrings(statuses)...))
	}
	err := q.Order("start_date DESC").Find(&out).Error
	return out, err
}

func (r *repository) ListWFHByUser(ctx context.Context, userID uuid.UUID, statuses []Status) ([]WorkFromHomeRequest, error) {
	var out []WorkFromHomeRequest
	q := r.db.WithContext(ctx).Scopes(scope.ForUser(userID.String()), scope.NotArchived)
	if len(statuses) > 0 {
		q = q.Scopes(scope.WithStatus(StatusStrings(statuses)...))
	}
	err := q.Order("start_date DESC").Find(&out).Error
	return out, err
}

func (r *repository) filtered(ctx context.Context, f RecordFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Scopes(scope.ForUser(f.UserID.String()))
	if len(f.Statuses) > 0 {
		q = q.Scopes(scope.WithStatus(StatusStrings(f.Statuses)...))
	}
	if !f.Start.IsZero() && !f.End.IsZero() {
		q = q.Scopes(scope.Intersecting(f.Start, f.End))
	}
	if f.ExcludeID != nil {
		q = q.Where("id <> ?", *f.ExcludeID)
	}
	return q.Order("start_date ASC")
}

func (r *repository) FindRecords(ctx context.Context, f RecordFilter) ([]Record, error) {
	var out []Record

	if f.wants(KindLeave) {
		var leaves []LeaveRequest
		if err := r.filtered(ctx, f).Find(&leaves).Error; err != nil {
			return nil, err
		}
		for _, l := range leaves {
			out = append(out, l.Record())
		}
	}

	if f.wants(KindWFH) {
		var wfh []WorkFromHomeRequest
		if err := r.filtered(ctx, f).Find(&wfh).Error; err != nil {
			return nil, err
		}
		for _, w := range wfh {
			out = append(out, w.Record())
		}
	}
	return out, nil
}

func (r *repository) NominationsBy(ctx context.Context, nominatorID, substituteID uuid.UUID, start, end time.Time) ([]Record, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(
			scope.ForUser(nominatorID.String()),
			scope.WithStatus(StatusStrings(ActiveStatuses)...),
			scope.Intersecting(start, end),
		).
		Where("id IN (?)", r.db.Model(&LeaveSubstitute{}).
			Select("request_id").
			Where("substitute_id = ?", substituteID)).
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(leaves))
	for i, l := range leaves {
		out[i] = l.Record()
	}
	return out, nil
}

func (r *repository) HasRecentDuplicate(ctx context.Context, kind Kind, userID uuid.UUID, leaveTypeID *uuid.UUID, start, end, since time.Time) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Scopes(scope.ForUser(userID.String())).
		Where("start_date = ? AND end_date = ?", start, end).
		Where("status <> ?", StatusCancelled).
		Where("created_at >= ?", since)

	if kind == KindLeave {
		q = q.Model(&LeaveRequest{})
		if leaveTypeID != nil {
			q = q.Where("leave_type_id = ?", *leaveTypeID)
		}
	} else {
		q = q.Model(&WorkFromHomeRequest{})
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) TransitionStatus(ctx context.Context, kind Kind, id uuid.UUID, from []Status, to Status, at time.Time) (bool, error) {
	updates := map[string]any{
		"status":     to,
		"updated_at": at,
	}
	switch to {
	case StatusApproved, StatusRejected:
		updates["decided_at"] = at
	case StatusCancelled:
		updates["cancelled_at"] = at
	}

	q := r.db.WithContext(ctx)
	if kind == KindLeave {
		q = q.Model(&LeaveRequest{})
	} else {
		q = q.Model(&WorkFromHomeRequest{})
	}
	res := q.Where("id = ? AND status IN ?", id, StatusStrings(from)).Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindLeaveType(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var t LeaveType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListActiveLeaveTypes(ctx context.Context) ([]LeaveType, error) {
	var out []LeaveType
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("code ASC").Find(&out).Error
	return out, err
}

// LeaveDayTotals sums active leave days by the year of their start date.
func (r *repository) LeaveDayTotals(ctx context.Context, year int) ([]DayTotal, error) {
	var out []DayTotal
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("user_id, leave_type_id, status, SUM(total_days) AS days").
		Scopes(scope.WithStatus(StatusStrings(ActiveStatuses)...)).
		Where("start_date BETWEEN ? AND ?", start, end).
		Group("user_id, leave_type_id, status").
		Scan(&out).Error
	return out, err
}

func (r *repository) ArchiveEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	for _, model := range []any{&LeaveRequest{}, &WorkFromHomeRequest{}} {
		res := r.db.WithContext(ctx).
			Model(model).
			Where("status = ? AND archived = ? AND end_date < ?", StatusApproved, false, cutoff).
			Update("archived", true)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

func (r *repository) PurgeCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&LeaveRequest{}).
			Select("id").
			Where("status = ? AND cancelled_at < ?", StatusCancelled, cutoff)
		if err := tx.Where("request_id IN (?)", stale).Delete(&LeaveSubstitute{}).Error; err != nil {
			return err
		}

		res := tx.Where("status = ? AND cancelled_at < ?", StatusCancelled, cutoff).Delete(&LeaveRequest{})
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected

		res = tx.Where("status = ? AND cancelled_at < ?", StatusCancelled, cutoff).Delete(&WorkFromHomeRequest{})
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected
		return nil
	})
	return total, err
}
