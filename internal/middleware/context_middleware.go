package middleware

import (
	"visionmines/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger tagged with the request id (and view id
// when the route has one) to the request context, so services can log
// through contextutil.GetLogger without knowing about gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetString("request_id")
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		fields := []zap.Field{zap.String("request_id", rid)}
		if viewID := c.Param("id"); viewID != "" {
			fields = append(fields, zap.String("view_id", viewID))
		}

		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
