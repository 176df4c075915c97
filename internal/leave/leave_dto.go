package leave

import "go-leave/internal/validation"

type CreateLeaveRequest struct {
	LeaveTypeID   string   `json:"leave_type_id" binding:"required,uuid"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	SelectedDates []string `json:"selected_dates"`
	SubstituteIDs []string `json:"substitute_ids"`
	Reason        string   `json:"reason" binding:"max=1000"`
}

type ValidationResponse struct {
	Valid       bool              `json:"valid"`
	WorkingDays int               `json:"working_days"`
	Errors      validation.Errors `json:"errors"`
}

type LeaveResponse struct {
	ID            string   `json:"id"`
	RequestNumber string   `json:"request_number"`
	UserID        string   `json:"user_id"`
	LeaveTypeID   string   `json:"leave_type_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	SelectedDates []string `json:"selected_dates,omitempty"`
	TotalDays     string   `json:"total_days"`
	SubstituteIDs []string `json:"substitute_ids,omitempty"`
	Reason        string   `json:"reason"`
	Status        string   `json:"status"`
	DecidedAt     *string  `json:"decided_at,omitempty"`
	CancelledAt   *string  `json:"cancelled_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type ListLeavesQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
