package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave_type_id",
		http.StatusBadRequest,
	)
	ErrInvalidSubstituteID = apperror.New(
		apperror.CodeInvalidInput,
		"substitute_ids must be UUIDs",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrNumberTaken = apperror.New(
		apperror.CodeConflict,
		"request number already allocated, retry the submission",
		http.StatusConflict,
	)
)
