package approval

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
	approvals := r.Group("/approvals")
	{
		approvals.GET("/pending",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionRead),
			handler.Pending,
		)
		approvals.GET("/:kind/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionRead),
			handler.History,
		)
		approvals.POST("/:kind/:id/approve",
			middleware.SlidingWindow(limiter, ratelimit.ClassApprove, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionApprove),
			middleware.Idempotency(rdb, logger),
			handler.Approve,
		)
		approvals.POST("/:kind/:id/reject",
			middleware.SlidingWindow(limiter, ratelimit.ClassApprove, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApproval, rbac.ActionApprove),
			middleware.Idempotency(rdb, logger),
			handler.Reject,
		)
	}
}
