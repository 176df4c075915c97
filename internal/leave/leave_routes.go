package leave

import (
	"go-leave/internal/middleware"
	"go-leave/internal/ratelimit"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	limiter *ratelimit.Limiter,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead),
			handler.GetAll,
		)
		leaves.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead),
			handler.GetByID,
		)
		leaves.POST("/validate",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			handler.Validate,
		)
		leaves.POST("",
			middleware.SlidingWindow(limiter, ratelimit.ClassSubmit, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		leaves.POST("/:id/cancel",
			middleware.SlidingWindow(limiter, ratelimit.ClassCancel, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCancel),
			middleware.Idempotency(rdb, logger),
			handler.Cancel,
		)
	}
}
