package audit

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	admin := r.Group("/admin")
	{
		admin.GET("/audit-logs",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAudit, rbac.ActionRead),
			handler.List,
		)
	}
}
