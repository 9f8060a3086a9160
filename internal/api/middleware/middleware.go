package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-referral/internal/api/shared/errors"
	"github.com/feral-file/ff-referral/internal/logger"
)

const REQUEST_ID_HEADER = "X-Request-ID"

// RequestID propagates the caller's request id or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(REQUEST_ID_HEADER, requestID)
		c.Header(REQUEST_ID_HEADER, requestID)
		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(REQUEST_ID_HEADER)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if subject := AuthSubject(c); subject != "" {
			fields = append(fields, zap.String("subject", subject))
		}

		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("request_id", c.GetString(REQUEST_ID_HEADER)),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
			}
		}()
		c.Next()
	}
}
