package middleware

import (
	"go-payledger/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		// Scoped logger yang sudah ditempeli metadata request. Logger ini yang
		// dipakai di sepanjang request ini.
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("path", c.FullPath()),
		)

		// Propagasi ke standard context agar layer Service bisa ambil via
		// contextutil tanpa tahu Gin.
		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
