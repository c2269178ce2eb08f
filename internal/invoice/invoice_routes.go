package invoice

import (
	"go-payledger/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("",
			middleware.RateLimitByIP(10, 30),
			handler.List,
		)

		invoices.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.Get,
		)

		invoices.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		invoices.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)

		invoices.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)

		invoices.PUT("/:id/restore",
			middleware.RateLimitByIP(0.5, 2),
			handler.Restore,
		)

		invoices.POST("/:id/payments",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.AddPayment,
		)
	}
}
