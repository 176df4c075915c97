package middleware

import (
	"strconv"
	"sync"
	"time"

	"go-leave/internal/ratelimit"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  *sync.RWMutex
	r   rate.Limit // tokens per second
	b   int        // burst
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.RWMutex{},
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}
	return limiter
}

// RateLimitByIP is a coarse burst guard applied to the whole API.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			response.Abort(c, apperror.ErrRateLimited.WithDetails(gin.H{"retry_after_seconds": 1}))
			return
		}
		c.Next()
	}
}

// RateLimitByUser is a token bucket for light read endpoints.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			c.Header("Retry-After", "1")
			response.Abort(c, apperror.ErrRateLimited.WithDetails(gin.H{"retry_after_seconds": 1}))
			return
		}
		c.Next()
	}
}

// SlidingWindow limits write endpoints per (identity, endpoint class). The
// identity is the authenticated user, or the client IP before login. A
// store failure lets the request through.
func SlidingWindow(limiter *ratelimit.Limiter, class string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetString("user_id")
		if identity == "" {
			identity = "ip:" + c.ClientIP()
		}

		decision, err := limiter.Allow(c.Request.Context(), identity, class)
		if err != nil {
			logger.Error("rate limit store failed",
				zap.String("class", class),
				zap.String("identity", identity),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if p, ok := limiter.Policy(class); ok {
			c.Header("X-RateLimit-Limit", strconv.Itoa(p.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			if !decision.ResetAt.IsZero() {
				c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
			}
		}

		if !decision.Allowed {
			secs := decision.RetryAfterSeconds()
			c.Header("Retry-After", strconv.Itoa(secs))
			response.Abort(c, apperror.ErrRateLimited.WithDetails(gin.H{
				"retry_after_seconds": secs,
				"reset_at":            decision.ResetAt.UTC().Format(time.RFC3339),
			}))
			return
		}
		c.Next()
	}
}
