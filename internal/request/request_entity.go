package request

import (
	"time"

	"go-leave/internal/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type LeaveType struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code               string          `gorm:"type:varchar(30);uniqueIndex:uq_leave_type_code"`
	Name               string          `gorm:"type:varchar(100);not null"`
	DefaultEntitlement decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	TracksBalance      bool            `gorm:"not null"`
	RequiresSubstitute bool            `gorm:"not null"`
	RequiredApprovals  int             `gorm:"not null"`
	IsActive           bool            `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (LeaveType) TableName() string { return "leave_types" }

// Approvals needed before the request is final; never below one.
func (t LeaveType) Approvals() int {
	if t.RequiredApprovals < 1 {
		return 1
	}
	return t.RequiredApprovals
}

type LeaveRequest struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	RequestNumber string                      `gorm:"type:varchar(30);uniqueIndex:uq_leave_request_number"`
	UserID        uuid.UUID                   `gorm:"type:uuid;not null;index:idx_leave_requests_user"`
	LeaveTypeID   uuid.UUID                   `gorm:"type:uuid;not null"`
	StartDate     time.Time                   `gorm:"type:date;not null"`
	EndDate       time.Time                   `gorm:"type:date;not null"`
	SelectedDates datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TotalDays     decimal.Decimal             `gorm:"type:numeric(6,2);not null"`
	Reason        string                      `gorm:"type:text"`
	Status        Status                      `gorm:"type:varchar(20);not null;index:idx_leave_requests_status"`
	Archived      bool                        `gorm:"not null"`
	DecidedAt     *time.Time
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Substitutes []LeaveSubstitute `gorm:"foreignKey:RequestID"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

type LeaveSubstitute struct {
	RequestID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubstituteID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_leave_substitutes_substitute"`
}

func (LeaveSubstitute) TableName() string { return "leave_request_substitutes" }

func (r LeaveRequest) SubstituteIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Substitutes))
	for i, s := range r.Substitutes {
		ids[i] = s.SubstituteID
	}
	return ids
}

func (r LeaveRequest) Selection() calendar.Selection {
	return calendar.FromRecord(r.StartDate, r.EndDate, parseDays(r.SelectedDates))
}

func (r LeaveRequest) Record() Record {
	typeID := r.LeaveTypeID
	return Record{
		Kind:          KindLeave,
		ID:            r.ID,
		Number:        r.RequestNumber,
		UserID:        r.UserID,
		LeaveTypeID:   &typeID,
		Status:        r.Status,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		SelectedDates: parseDays(r.SelectedDates),
		TotalDays:     r.TotalDays,
		CreatedAt:     r.CreatedAt,
	}
}

type WorkFromHomeRequest struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	RequestNumber string                      `gorm:"type:varchar(30);uniqueIndex:uq_wfh_request_number"`
	UserID        uuid.UUID                   `gorm:"type:uuid;not null;index:idx_wfh_requests_user"`
	StartDate     time.Time                   `gorm:"type:date;not null"`
	EndDate       time.Time                   `gorm:"type:date;not null"`
	SelectedDates datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TotalDays     decimal.Decimal             `gorm:"type:numeric(6,2);not null"`
	Location      string                      `gorm:"type:varchar(200);not null"`
	Reason        string                      `gorm:"type:text"`
	Status        Status                      `gorm:"type:varchar(20);not null;index:idx_wfh_requests_status"`
	Archived      bool                        `gorm:"not null"`
	DecidedAt     *time.Time
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (WorkFromHomeRequest) TableName() string { return "wfh_requests" }

func (r WorkFromHomeRequest) Selection() calendar.Selection {
	return calendar.FromRecord(r.StartDate, r.EndDate, parseDays(r.SelectedDates))
}

func (r WorkFromHomeRequest) Record() Record {
	return Record{
		Kind:          KindWFH,
		ID:            r.ID,
		Number:        r.RequestNumber,
		UserID:        r.UserID,
		Status:        r.Status,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		SelectedDates: parseDays(r.SelectedDates),
		TotalDays:     r.TotalDays,
		CreatedAt:     r.CreatedAt,
	}
}

// Record is the kind-independent view used by the overlap, substitute and
// approval logic.
type Record struct {
	Kind          Kind
	ID            uuid.UUID
	Number        string
	UserID        uuid.UUID
	LeaveTypeID   *uuid.UUID
	Status        Status
	StartDate     time.Time
	EndDate       time.Time
	SelectedDates []time.Time
	TotalDays     decimal.Decimal
	CreatedAt     time.Time
}

func (r Record) Selection() calendar.Selection {
	return calendar.FromRecord(r.StartDate, r.EndDate, r.SelectedDates)
}

// DayTotal is the sum of total_days per user, leave type and status.
type DayTotal struct {
	UserID      uuid.UUID
	LeaveTypeID uuid.UUID
	Status      Status
	Days        decimal.Decimal
}

// FormatDays renders explicit days for the selected_dates column; nil for
// plain ranges.
func FormatDays(sel calendar.Selection) datatypes.JSONSlice[string] {
	explicit, ok := sel.(calendar.ExplicitDays)
	if !ok {
		return nil
	}
	out := make(datatypes.JSONSlice[string], len(explicit.Days))
	for i, d := range explicit.Days {
		out[i] = calendar.Format(d)
	}
	return out
}

func parseDays(raw []string) []time.Time {
	if len(raw) == 0 {
		return nil
	}
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		if d, err := calendar.ParseDate(s); err == nil {
			out = append(out, d)
		}
	}
	return out
}
