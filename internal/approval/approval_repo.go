package approval

import (
	"context"
	"time"

	"go-leave/internal/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, a *Approval) error
	ListByRequest(ctx context.Context, kind request.Kind, requestID uuid.UUID) ([]Approval, error)
	FindPendingFor(ctx context.Context, kind request.Kind, requestID, approverID uuid.UUID) (*Approval, error)
	ListPendingForApprover(ctx context.Context, approverID uuid.UUID) ([]Approval, error)
	CountByStatus(ctx context.Context, kind request.Kind, requestID uuid.UUID, status Status) (int64, error)

	// Decide moves a PENDING row to status; false means it was no longer PENDING.
	Decide(ctx context.Context, id uuid.UUID, status Status, comment string, at time.Time) (bool, error)
	MarkEscalated(ctx context.Context, id, escalatedTo uuid.UUID, at time.Time) (bool, error)
	AssignApprover(ctx context.Context, id, approverID uuid.UUID) (bool, error)
	CancelPending(ctx context.Context, kind request.Kind, requestID uuid.UUID, at time.Time) (int64, error)

	ListStalePending(ctx context.Context, createdBefore time.Time) ([]Approval, error)
	ListUnassigned(ctx context.Context) ([]Approval, error)
	// DeleteOrphans removes rows whose request no longer exists.
	DeleteOrphans(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, a *Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) ListByRequest(ctx context.Context, kind request.Kind, requestID uuid.UUID) ([]Approval, error) {
	var out []Approval
	err := r.db.WithContext(ctx).
		Where("request_kind = ? AND request_id = ?", kind, requestID).
		Order("level ASC, created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindPendingFor(ctx context.Context, kind request.Kind, requestID, approverID uuid.UUID) (*Approval, error) {
	var a Approval
	err := r.db.WithContext(ctx).
		Where("request_kind = ? AND request_id = ? AND approver_id = ? AND status = ?",
			kind, requestID, approverID, StatusPending).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListPendingForApprover(ctx context.Context, approverID uuid.UUID) ([]Approval, error) {
	var out []Approval
	err := r.db.WithContext(ctx).
		Where("approver_id = ? AND status = ?", approverID, StatusPending).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) CountByStatus(ctx context.Context, kind request.Kind, requestID uuid.UUID, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Approval{}).
		Where("request_kind = ? AND request_id = ? AND status = ?", kind, requestID, status).
		Count(&n).Error
	return n, err
}

func (r *repository) casPending(ctx context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Approval{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) Decide(ctx context.Context, id uuid.UUID, status Status, comment string, at time.Time) (bool, error) {
	return r.casPending(ctx, id, map[string]any{
		"status":     status,
		"comment":    comment,
		"decided_at": at,
		"updated_at": at,
	})
}

func (r *repository) MarkEscalated(ctx context.Context, id, escalatedTo uuid.UUID, at time.Time) (bool, error) {
	return r.casPending(ctx, id, map[string]any{
		"status":          StatusEscalated,
		"escalated_to_id": escalatedTo,
		"escalated_at":    at,
		"updated_at":      at,
	})
}

func (r *repository) AssignApprover(ctx context.Context, id, approverID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Approval{}).
		Where("id = ? AND status = ? AND approver_id IS NULL", id, StatusPending).
		Updates(map[string]any{"approver_id": approverID, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CancelPending(ctx context.Context, kind request.Kind, requestID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Approval{}).
		Where("request_kind = ? AND request_id = ? AND status = ?", kind, requestID, StatusPending).
		Updates(map[string]any{"status": StatusCancelled, "decided_at": at, "updated_at": at})
	return res.RowsAffected, res.Error
}

func (r *repository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]Approval, error) {
	var out []Approval
	err := r.db.WithContext(ctx).
		Where("status = ? AND approver_id IS NOT NULL AND created_at < ?", StatusPending, createdBefore).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListUnassigned(ctx context.Context) ([]Approval, error) {
	var out []Approval
	err := r.db.WithContext(ctx).
		Where("status = ? AND approver_id IS NULL", StatusPending).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) DeleteOrphans(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
DELETE FROM approvals
WHERE (request_kind = ? AND NOT EXISTS (SELECT 1 FROM leave_requests lr WHERE lr.id = approvals.request_id))
   OR (request_kind = ? AND NOT EXISTS (SELECT 1 FROM wfh_requests wr WHERE wr.id = approvals.request_id))
`, request.KindLeave, request.KindWFH)
	return res.RowsAffected, res.Error
}
