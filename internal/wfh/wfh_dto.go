package wfh

import "go-leave/internal/validation"

type CreateWFHRequest struct {
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	SelectedDates []string `json:"selected_dates"`
	Location      string   `json:"location"`
	Reason        string   `json:"reason" binding:"max=1000"`
}

type ValidationResponse struct {
	Valid       bool              `json:"valid"`
	WorkingDays int               `json:"working_days"`
	Errors      validation.Errors `json:"errors"`
}

type WFHResponse struct {
	ID            string   `json:"id"`
	RequestNumber string   `json:"request_number"`
	UserID        string   `json:"user_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	SelectedDates []string `json:"selected_dates,omitempty"`
	TotalDays     string   `json:"total_days"`
	Location      string   `json:"location"`
	Reason        string   `json:"reason"`
	Status        string   `json:"status"`
	DecidedAt     *string  `json:"decided_at,omitempty"`
	CancelledAt   *string  `json:"cancelled_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type ListWFHQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
