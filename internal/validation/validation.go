// Package validation holds the user-correctable error list returned by every
// request validator. Lists are values, never Go errors, until a handler
// decides to reject the call.
package validation

import (
	"fmt"

	"go-leave/internal/shared/apperror"
)

type Code string

const (
	CodePastDate             Code = "PAST_DATE"
	CodeInvalidDateRange     Code = "INVALID_DATE_RANGE"
	CodeExceedsMaxDays       Code = "EXCEEDS_MAX_DAYS"
	CodeInsufficientNotice   Code = "INSUFFICIENT_NOTICE"
	CodeCurrentWeek          Code = "CURRENT_WEEK_NOT_ALLOWED"
	CodeInvalidSelectedDates Code = "INVALID_SELECTED_DATES"
	CodeNoWorkingDays        Code = "NO_WORKING_DAYS"

	CodeOverlappingRequests Code = "OVERLAPPING_REQUESTS"
	CodeLeaveConflict       Code = "LEAVE_CONFLICT"
	CodeBlockedDates        Code = "BLOCKED_DATES"
	CodeDuplicateRequest    Code = "DUPLICATE_REQUEST"

	CodeLeaveTypeNotFound   Code = "LEAVE_TYPE_NOT_FOUND"
	CodeBalanceNotFound     Code = "BALANCE_NOT_FOUND"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeNegativeBalance     Code = "NEGATIVE_BALANCE_NOT_ALLOWED"

	CodeSubstituteRequired    Code = "SUBSTITUTE_REQUIRED"
	CodeSelfSubstitution      Code = "SELF_SUBSTITUTION"
	CodeSubstituteUnavailable Code = "SUBSTITUTE_UNAVAILABLE"
	CodeSubstituteInactive    Code = "SUBSTITUTE_INACTIVE"
	CodeCircularSubstitution  Code = "CIRCULAR_SUBSTITUTION"
	CodeDuplicateSubstitutes  Code = "DUPLICATE_SUBSTITUTES"

	CodeSelfApproval       Code = "SELF_APPROVAL_NOT_ALLOWED"
	CodeNotInApprovalChain Code = "NOT_IN_APPROVAL_CHAIN"

	CodeLocationRequired Code = "LOCATION_REQUIRED"
	CodeLocationTooShort Code = "LOCATION_TOO_SHORT"
	CodeLocationTooLong  Code = "LOCATION_TOO_LONG"
)

// Field names follow the json tags of the submission payloads.
const (
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldSelectedDates = "selected_dates"
	FieldLeaveType     = "leave_type_id"
	FieldSubstitutes   = "substitute_ids"
	FieldLocation      = "location"
	FieldApprover      = "approver_id"
	FieldRequest       = "request"
)

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

type Errors []Error

func (e *Errors) Add(field string, code Code, message string) {
	*e = append(*e, Error{Field: field, Message: message, Code: code})
}

func (e *Errors) Addf(field string, code Code, format string, args ...any) {
	e.Add(field, code, fmt.Sprintf(format, args...))
}

func (e *Errors) Merge(other Errors) {
	*e = append(*e, other...)
}

func (e Errors) Empty() bool { return len(e) == 0 }

func (e Errors) Has(code Code) bool {
	for _, v := range e {
		if v.Code == code {
			return true
		}
	}
	return false
}

func (e Errors) Codes() []Code {
	codes := make([]Code, len(e))
	for i, v := range e {
		codes[i] = v.Code
	}
	return codes
}

// Err converts a non-empty list into a 422 AppError carrying the list as details.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperror.ErrValidationFailed.WithDetails(e)
}

// Single is shorthand for a one-element list, used by permission checks.
func Single(field string, code Code, message string) Errors {
	return Errors{{Field: field, Message: message, Code: code}}
}
