package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/domain"
	"github.com/legal-assistant/legal-assistant-backend/internal/reqctx"
)

// RateLimitMiddleware rejects requests beyond perSecond (with the given
// burst) using one limiter shared by every caller. A non-positive rate
// disables limiting.
func RateLimitMiddleware(perSecond float64, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Printf("[warn] request_id=%s operation=rate_limit path=%s rejected", reqctx.FromGin(c), c.Request.URL.Path)
			err := domain.ErrRateLimited
			c.AbortWithStatusJSON(err.Kind.StatusCode(), domain.Failed(err.Message))
			return
		}
		c.Next()
	}
}
