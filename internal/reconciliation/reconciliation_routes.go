package reconciliation

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	admin := r.Group("/admin/reconciliation")
	{
		admin.POST("/run",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceReconciliation, rbac.ActionRun),
			handler.Run,
		)
	}
}
