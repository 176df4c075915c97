package events

import "time"

const RequestLifecycleTopic = "hr.leave.request.lifecycle.v1"

const (
	EventRequestSubmitted  = "request_submitted"
	EventRequestApproved   = "request_approved"
	EventRequestRejected   = "request_rejected"
	EventRequestCancelled  = "request_cancelled"
	EventApprovalAdvanced  = "approval_advanced"
	EventApprovalEscalated = "approval_escalated"
)

// RequestLifecycleEvent is consumed by notifiers outside this service. The
// next approver is set whenever someone new has to act.
type RequestLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	RequestKind    string    `json:"request_kind"`
	EntityID       string    `json:"entity_id"`
	RequestNumber  string    `json:"request_number"`
	UserID         string    `json:"user_id"`
	Status         string    `json:"status"`
	ActorID        string    `json:"actor_id,omitempty"`
	NextApproverID string    `json:"next_approver_id,omitempty"`
	Level          int       `json:"level,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
