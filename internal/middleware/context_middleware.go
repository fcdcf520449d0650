package middleware

import (
	"time"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request id and
// logs one line per request once the handler chain returns. It must run after
// RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetString("request_id")

		reqLogger := logger.With(zap.String("request_id", rid))

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_id", c.GetString(ContextUserID)),
		)
	}
}

// ExtractUserID runs after AuthMiddleware and enriches the request context
// with the authenticated user so services log it without knowing gin.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(ContextUserID)
		if uid == "" {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}

		c.Set("user_id_validated", uid)

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", uid),
			zap.String("email", c.GetString(ContextEmail)),
		)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
