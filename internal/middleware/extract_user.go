package middleware

import (
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Abort(ctx, ErrMissingAuthContext)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Abort(ctx, ErrInvalidToken)
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
