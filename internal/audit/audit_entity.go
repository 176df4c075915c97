package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionRequestSubmitted  = "REQUEST_SUBMITTED"
	ActionRequestCancelled  = "REQUEST_CANCELLED"
	ActionRequestApproved   = "REQUEST_APPROVED"
	ActionRequestRejected   = "REQUEST_REJECTED"
	ActionApprovalApproved  = "APPROVAL_APPROVED"
	ActionApprovalRejected  = "APPROVAL_REJECTED"
	ActionApprovalDenied    = "APPROVAL_DENIED_SELF"
	ActionApprovalEscalated = "APPROVAL_ESCALATED"
	ActionApprovalRepaired  = "APPROVAL_REASSIGNED"
	ActionApprovalCancelled = "APPROVAL_CANCELLED"
	ActionReconciliationRun = "RECONCILIATION_RUN"
	ActionServerShutdown    = "SERVER_SHUTDOWN"
)

const (
	EntityLeaveRequest   = "leave_request"
	EntityWFHRequest     = "wfh_request"
	EntityApproval       = "approval"
	EntityReconciliation = "reconciliation"
	EntityServer         = "server"
)

// AuditLog rows are append-only; only the retention sweep deletes them.
type AuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ActorID   *uuid.UUID     `gorm:"type:uuid;index:idx_audit_logs_actor"`
	Action    string         `gorm:"type:varchar(50);not null;index:idx_audit_logs_action"`
	Entity    string         `gorm:"type:varchar(50);not null;index:idx_audit_logs_entity,priority:1"`
	EntityID  string         `gorm:"type:varchar(64);index:idx_audit_logs_entity,priority:2"`
	OldValues datatypes.JSON `gorm:"type:jsonb"`
	NewValues datatypes.JSON `gorm:"type:jsonb"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;index:idx_audit_logs_created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

// Entry is what callers hand to the recorder; snapshots are marshalled to JSON.
type Entry struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Old      any
	New      any
	Metadata map[string]any
}
