package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-referral/internal/api/shared/errors"
	"github.com/feral-file/ff-referral/internal/logger"
	"github.com/feral-file/ff-referral/internal/ratelimit"
)

// RateLimit limits requests per authenticated subject, or per client IP for service callers.
// A nil limiter disables limiting. Limiter errors let the request through.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := scope + ":ip:" + c.ClientIP()
		if subject := AuthSubject(c); subject != "" {
			key = scope + ":user:" + subject
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, allowing request",
				zap.Error(err),
				zap.String("scope", scope),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			apiErr := apierrors.NewTooManyRequestsError("Rate limit exceeded", "retry after "+strconv.Itoa(retryAfter)+"s")
			c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
			return
		}

		c.Next()
	}
}
