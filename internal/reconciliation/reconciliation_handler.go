package reconciliation

import (
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reconciliation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reconciliation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Run(c *gin.Context) {
	userID := c.GetString("employee_id")
	h.logger.Info("manual reconciliation requested", zap.String("user_id", userID))

	ctx := contextutil.WithUserID(c.Request.Context(), userID)
	res, err := h.service.TryRun(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
