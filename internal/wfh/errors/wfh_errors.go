package wfherrors

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
	ErrWFHNotFound = apperror.New(
		apperror.CodeNotFound,
		"work from home request not found",
		http.StatusNotFound,
	)
	ErrNumberTaken = apperror.New(
		apperror.CodeConflict,
		"request number already allocated, retry the submission",
		http.StatusConflict,
	)
)
