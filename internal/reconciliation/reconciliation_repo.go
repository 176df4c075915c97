package reconciliation

import (
	"context"
	"time"

	"go-leave/internal/request"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reconciliation_repo.go -destination=mock/reconciliation_repo_mock.go -package=mock
type Repository interface {
	// DeleteOrphanDocuments removes documents whose request is gone, together
	// with their signatures, and returns the number of documents removed.
	DeleteOrphanDocuments(ctx context.Context) (int64, error)
	DeleteReadNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const orphanDocuments = `
SELECT d.id FROM documents d
WHERE (d.request_kind = ? AND NOT EXISTS (SELECT 1 FROM leave_requests lr WHERE lr.id = d.request_id))
   OR (d.request_kind = ? AND NOT EXISTS (SELECT 1 FROM wfh_requests wr WHERE wr.id = d.request_id))`

func (r *repository) DeleteOrphanDocuments(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM document_signatures WHERE document_id IN (`+orphanDocuments+`)`,
			request.KindLeave, request.KindWFH,
		).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM documents WHERE id IN (`+orphanDocuments+`)`, request.KindLeave, request.KindWFH)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *repository) DeleteReadNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&SessionToken{})
	return res.RowsAffected, res.Error
}
