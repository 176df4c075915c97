package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Filter struct {
	Action   string
	Entity   string
	EntityID string
	ActorID  *uuid.UUID
	Limit    int
	Offset   int
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *AuditLog) error
	List(ctx context.Context, f Filter) ([]AuditLog, int64, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository detaches from any statement state on db so audit writes never
// join a caller's transaction.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db.Session(&gorm.Session{NewDB: true})}
}

func (r *repository) Create(ctx context.Context, l *AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) List(ctx context.Context, f Filter) ([]AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&AuditLog{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != "" {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.ActorID != nil {
		q = q.Where("actor_id = ?", *f.ActorID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var out []AuditLog
	err := q.Find(&out).Error
	return out, total, err
}

func (r *repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&AuditLog{})
	return res.RowsAffected, res.Error
}
