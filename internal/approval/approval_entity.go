package approval

import (
	"time"

	"go-leave/internal/request"

	"github.com/google/uuid"
)

// Approval is one step of a request's chain. Escalation appends a new row at
// the next level; the old row only moves PENDING -> ESCALATED.
type Approval struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	RequestKind   request.Kind `gorm:"type:varchar(10);not null;index:idx_approvals_request,priority:1;uniqueIndex:uq_approvals_pending_level,priority:1,where:status = 'PENDING'"`
	RequestID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_approvals_request,priority:2;uniqueIndex:uq_approvals_pending_level,priority:2,where:status = 'PENDING'"`
	Level         int          `gorm:"not null;uniqueIndex:uq_approvals_pending_level,priority:3,where:status = 'PENDING'"`
	ApproverID    *uuid.UUID   `gorm:"type:uuid;index:idx_approvals_approver"`
	Status        Status       `gorm:"type:varchar(20);not null;index:idx_approvals_status"`
	EscalatedToID *uuid.UUID   `gorm:"type:uuid"`
	EscalatedAt   *time.Time
	DecidedAt     *time.Time
	Comment       string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Approval) TableName() string { return "approvals" }

func (a Approval) AssignedTo(id uuid.UUID) bool {
	return a.ApproverID != nil && *a.ApproverID == id
}
