package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"type:date;not null;index:idx_holidays_date"`
	Name      string    `gorm:"type:varchar(120);not null"`
	IsBlocked bool      `gorm:"not null;default:false"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string { return "holidays" }

// BlockedDate is a blocked holiday that falls on a requested day.
type BlockedDate struct {
	Date time.Time
	Name string
}
