package approvalerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

const CodeNoLongerPending = "APPROVAL_NO_LONGER_PENDING"

var (
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Approval not found",
		http.StatusNotFound,
	)
	ErrNoLongerPending = apperror.New(
		CodeNoLongerPending,
		"This approval was already decided by someone else",
		http.StatusConflict,
	)
	ErrNotPermitted = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to decide this request",
		http.StatusForbidden,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"The approval cannot move to that status",
		http.StatusConflict,
	)
)
