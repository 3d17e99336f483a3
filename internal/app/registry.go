package app

import (
	"database/sql"

	"go-payroll/internal/employee"
	"go-payroll/internal/exchange"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/user"
	"go-payroll/internal/withdrawal"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	rateRepo := exchange.NewRepository(gormDB)
	paymentRepo := payroll.NewPaymentRepository(gormDB)
	withdrawalRepo := withdrawal.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	rateService := exchange.NewService(db, rateRepo)
	balanceService := payroll.NewBalanceService(employeeRepo, paymentRepo, withdrawalRepo)
	withdrawalService := withdrawal.NewServiceWithOutbox(
		db, withdrawalRepo, employeeRepo, userRepo, rateRepo, outboxRepo,
	)

	// --- Handlers ---
	rateHandler := exchange.NewHandler(rateService)
	balanceHandler := payroll.NewHandler(balanceService)
	withdrawalHandler := withdrawal.NewHandlerWithRedis(withdrawalService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		exchange.RegisterRoutes(api, rateHandler)
		payroll.RegisterRoutes(api, balanceHandler)
		withdrawal.RegisterRoutes(api, withdrawalHandler, rdb)
	}

	return nil
}
