package approval

import "time"

type DecisionRequest struct {
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

type ApprovalResponse struct {
	ID            string     `json:"id"`
	RequestKind   string     `json:"request_kind"`
	RequestID     string     `json:"request_id"`
	Level         int        `json:"level"`
	ApproverID    string     `json:"approver_id,omitempty"`
	Status        string     `json:"status"`
	EscalatedToID string     `json:"escalated_to_id,omitempty"`
	EscalatedAt   *time.Time `json:"escalated_at,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Comment       string     `json:"comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PendingApprovalResponse struct {
	ApprovalResponse
	RequestNumber string `json:"request_number"`
	RequesterID   string `json:"requester_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalDays     string `json:"total_days"`
}

// DecisionResponse reports the outcome of approve/reject. NextApproverID is
// set when the chain advanced to another level.
type DecisionResponse struct {
	RequestKind    string `json:"request_kind"`
	RequestID      string `json:"request_id"`
	RequestStatus  string `json:"request_status"`
	ApprovalStatus string `json:"approval_status"`
	Level          int    `json:"level"`
	NextApproverID string `json:"next_approver_id,omitempty"`
}

func mapToResponse(a Approval) ApprovalResponse {
	resp := ApprovalResponse{
		ID:          a.ID.String(),
		RequestKind: string(a.RequestKind),
		RequestID:   a.RequestID.String(),
		Level:       a.Level,
		Status:      string(a.Status),
		EscalatedAt: a.EscalatedAt,
		DecidedAt:   a.DecidedAt,
		Comment:     a.Comment,
		CreatedAt:   a.CreatedAt,
	}
	if a.ApproverID != nil {
		resp.ApproverID = a.ApproverID.String()
	}
	if a.EscalatedToID != nil {
		resp.EscalatedToID = a.EscalatedToID.String()
	}
	return resp
}
