package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	financeapp "github.com/backoffice/backend/internal/application/finance"
	partnerapp "github.com/backoffice/backend/internal/application/partner"
	reportapp "github.com/backoffice/backend/internal/application/report"
	tradeapp "github.com/backoffice/backend/internal/application/trade"
	"github.com/backoffice/backend/internal/infrastructure/cache"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/backoffice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	stockSettingsRepo := persistence.NewGormStockSettingsRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	orderPaymentRepo := persistence.NewGormOrderPaymentRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	saleItemRepo := persistence.NewGormSaleLineItemRepository(db.DB)
	salePaymentRepo := persistence.NewGormSalePaymentRepository(db.DB)
	expenseCategoryRepo := persistence.NewGormExpenseCategoryRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerReportRepository(db.DB)

	// Application services
	customerService := partnerapp.NewCustomerService(customerRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	stockSettingsService := catalogapp.NewStockSettingsService(stockSettingsRepo)
	orderService := tradeapp.NewOrderService(orderRepo, orderPaymentRepo, customerRepo)
	saleService := tradeapp.NewSaleService(saleRepo, saleItemRepo, salePaymentRepo, customerRepo)
	expenseCategoryService := financeapp.NewExpenseCategoryService(expenseCategoryRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, expenseCategoryRepo)

	dashboardCache := buildDashboardCache(cfg, log)
	aggregator := reportapp.NewFinancialAggregator(ledgerRepo, log)
	dashboardService := reportapp.NewDashboardService(
		aggregator,
		ledgerRepo,
		orderRepo,
		productRepo,
		stockSettingsRepo,
		expenseCategoryRepo,
		dashboardCache,
		reportapp.LocaleFor(cfg.App.Locale),
		cfg.App.Location(),
		nil,
		log,
	)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins),
		middleware.Secure(),
	)

	healthHandler := handler.NewHealthHandler(db)
	healthHandler.RegisterRoutes(engine)

	router.New(engine).Register(
		handler.NewCustomerHandler(customerService),
		handler.NewCategoryHandler(categoryService, productService),
		handler.NewProductHandler(productService),
		handler.NewStockSettingsHandler(stockSettingsService),
		handler.NewOrderHandler(orderService),
		handler.NewSaleHandler(saleService),
		handler.NewExpenseHandler(expenseService, expenseCategoryService),
		handler.NewDashboardHandler(dashboardService),
	).Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", server.Addr))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

// buildDashboardCache prefers Redis and degrades to the in-process cache
// when Redis is unreachable or caching is disabled.
func buildDashboardCache(cfg *config.Config, log *zap.Logger) reportapp.DashboardCache {
	if !cfg.Dashboard.CacheEnabled {
		return nil
	}

	redisCache, err := cache.NewRedisDashboardCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Dashboard.CacheTTL, log)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory dashboard cache", zap.Error(err))
		return cache.NewInMemoryDashboardCache(cfg.Dashboard.CacheTTL)
	}
	return redisCache
}
