package scope

import (
	"time"

	"gorm.io/gorm"
)

// ForUser restricts a query to rows owned by userID.
func ForUser(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// WithStatus restricts a query to the given status values.
func WithStatus(statuses ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status IN ?", statuses)
	}
}

// Intersecting keeps rows whose [start_date, end_date] envelope touches [start, end].
func Intersecting(start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("NOT (end_date < ? OR start_date > ?)", start, end)
	}
}

// NotArchived hides requests flagged by the archival sweep.
func NotArchived(db *gorm.DB) *gorm.DB {
	return db.Where("archived = ?", false)
}
