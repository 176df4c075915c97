package balance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveBalance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance,priority:1"`
	LeaveTypeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance,priority:2"`
	Year           int             `gorm:"not null;uniqueIndex:uq_leave_balance,priority:3"`
	Entitled       decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CarriedForward decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Used           decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Pending        decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Available      decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LeaveBalance) TableName() string { return "leave_balances" }

// Recalculate restores available = entitled + carried_forward - used - pending.
func (b *LeaveBalance) Recalculate() {
	b.Available = b.Entitled.Add(b.CarriedForward).Sub(b.Used).Sub(b.Pending)
}

// Key identifies one balance row.
type Key struct {
	UserID      uuid.UUID
	LeaveTypeID uuid.UUID
	Year        int
}

func (b LeaveBalance) Key() Key {
	return Key{UserID: b.UserID, LeaveTypeID: b.LeaveTypeID, Year: b.Year}
}
