package wfh

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
	requests := r.Group("/wfh")
	{
		requests.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWFH, rbac.ActionRead),
			handler.GetAll,
		)
		requests.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWFH, rbac.ActionRead),
			handler.GetByID,
		)
		requests.POST("/validate",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWFH, rbac.ActionCreate),
			handler.Validate,
		)
		requests.POST("",
			middleware.SlidingWindow(limiter, ratelimit.ClassSubmit, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWFH, rbac.ActionCreate),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		requests.POST("/:id/cancel",
			middleware.SlidingWindow(limiter, ratelimit.ClassCancel, logger),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWFH, rbac.ActionCancel),
			middleware.Idempotency(rdb, logger),
			handler.Cancel,
		)
	}
}
