package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce",
			middleware.RBACAuthorize(service, ResourceAudit, ActionRead),
			handler.Enforce,
		)
		group.GET("/me/permissions",
			middleware.RateLimitByUser(5, 20),
			handler.MyPermissions,
		)
	}
}
