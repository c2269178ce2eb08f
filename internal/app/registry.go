package app

import (
	"go-payledger/internal/config"
	"go-payledger/internal/invoice"
	"go-payledger/internal/ledger"
	"go-payledger/internal/middleware"
	"go-payledger/internal/payroll"
	"go-payledger/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
) error {
	// --- Upstream client ---
	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, nil)

	// --- Services ---
	policy := salary.Policy{
		WorkingDayMinutes: cfg.WorkingDayMinutes,
		FixedLatePenalty:  cfg.FixedLatePenalty,
	}
	payrollService := payroll.NewService(ledgerClient, policy)
	invoiceService := invoice.NewService(ledgerClient, cfg.DefaultVATRate)

	// --- Handlers ---
	payrollHandler := payroll.NewHandler(payrollService)
	invoiceHandler := invoice.NewHandlerWithRedis(invoiceService, rdb)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		payroll.RegisterRoutes(api, payrollHandler)
		invoice.RegisterRoutes(api, invoiceHandler, rdb)
	}

	return nil
}
