package withdrawal

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	withdrawals := r.Group("/salary-withdrawals")
	withdrawals.Use(middleware.AuthMiddleware())
	{
		withdrawals.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)
		withdrawals.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			handler.GetById,
		)
		withdrawals.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		withdrawals.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		withdrawals.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
