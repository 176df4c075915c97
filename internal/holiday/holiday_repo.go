package holiday

import (
	"context"
	"time"

	"go-leave/internal/calendar"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	ListActiveByYear(ctx context.Context, year int) ([]Holiday, error)
	Create(ctx context.Context, h *Holiday) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActiveByYear(ctx context.Context, year int) ([]Holiday, error) {
	var holidays []Holiday
	start := calendar.Date(year, time.January, 1)
	end := calendar.Date(year, time.December, 31)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}
