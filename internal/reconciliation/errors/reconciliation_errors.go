package reconciliationerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrAlreadyRunning = apperror.New(
	apperror.CodeConflict,
	"A reconciliation run is already in progress",
	http.StatusConflict,
)
