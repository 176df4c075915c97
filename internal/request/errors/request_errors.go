package requesterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request ID",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"Request kind must be leave or wfh",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"The request cannot move to that status",
		http.StatusConflict,
	)
	ErrStatusChanged = apperror.New(
		apperror.CodeConflict,
		"The request status changed concurrently",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the requester can do this",
		http.StatusForbidden,
	)
	ErrAlreadyStarted = apperror.New(
		apperror.CodeInvalidState,
		"An approved request can only be cancelled before it starts",
		http.StatusConflict,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
)
