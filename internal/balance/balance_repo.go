package balance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Find(ctx context.Context, key Key) (*LeaveBalance, error)
	// FindForUpdate locks the row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, key Key) (*LeaveBalance, error)
	Create(ctx context.Context, b *LeaveBalance) error
	Save(ctx context.Context, b *LeaveBalance) error
	ListForUser(ctx context.Context, userID uuid.UUID, year int) ([]LeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
	// YearsSince lists the distinct years holding balance rows, oldest first.
	YearsSince(ctx context.Context, since int) ([]int, error)
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

func (r *repository) byKey(ctx context.Context, key Key) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND leave_type_id = ? AND year = ?", key.UserID, key.LeaveTypeID, key.Year)
}

func (r *repository) Find(ctx context.Context, key Key) (*LeaveBalance, error) {
	var b LeaveBalance
	if err := r.byKey(ctx, key).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindForUpdate(ctx context.Context, key Key) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.byKey(ctx, key).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create skips rows that already exist so provisioning can race safely.
func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(b).Error
}

func (r *repository) Save(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID, year int) ([]LeaveBalance, error) {
	var out []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		Order("leave_type_id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListByYear(ctx context.Context, year int) ([]LeaveBalance, error) {
	var out []LeaveBalance
	err := r.db.WithContext(ctx).Where("year = ?", year).Find(&out).Error
	return out, err
}

func (r *repository) YearsSince(ctx context.Context, since int) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("year >= ?", since).
		Distinct("year").
		Order("year").
		Pluck("year", &years).Error
	return years, err
}
