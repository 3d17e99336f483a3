package exchange

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rates := r.Group("/dollar-rates")
	rates.Use(middleware.AuthMiddleware())
	{
		rates.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)
		rates.GET("/resolve",
			middleware.RateLimitByUser(2, 5),
			handler.Resolve,
		)
		rates.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
	}
}
