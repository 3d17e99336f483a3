package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/available-balance",
			middleware.RateLimitByUser(2, 5),
			handler.GetAvailableBalance,
		)
	}
}
