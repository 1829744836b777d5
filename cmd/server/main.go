package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/muebleria/backend/internal/application/catalog"
	inventoryapp "github.com/muebleria/backend/internal/application/inventory"
	partnerapp "github.com/muebleria/backend/internal/application/partner"
	reportapp "github.com/muebleria/backend/internal/application/report"
	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/infrastructure/config"
	"github.com/muebleria/backend/internal/infrastructure/logger"
	"github.com/muebleria/backend/internal/infrastructure/persistence"
	"github.com/muebleria/backend/internal/infrastructure/telemetry"
	"github.com/muebleria/backend/internal/interfaces/http/handler"
	"github.com/muebleria/backend/internal/interfaces/http/middleware"
	"github.com/muebleria/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Muebleria Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	ctx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if tracerProvider.IsEnabled() {
		if err := db.EnableTracing(); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	materialRepo := persistence.NewGormMaterialRepository(db.DB)
	colorRepo := persistence.NewGormColorRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo, materialRepo, colorRepo)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	sellerService := partnerapp.NewSellerService(sellerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, categoryRepo)
	saleService := tradeapp.NewSaleService(saleRepo, productRepo, sellerRepo, customerRepo, cfg.Sale.TransactionTimeout)
	reportService := reportapp.NewReportService(reportRepo)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	customerHandler := handler.NewCustomerHandler(customerService)
	sellerHandler := handler.NewSellerHandler(sellerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	saleHandler := handler.NewSaleHandler(saleService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Route registration
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/categories", productHandler.Categories)
	catalogRoutes.GET("/materials", productHandler.Materials)
	catalogRoutes.GET("/colors", productHandler.Colors)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/items", inventoryHandler.List)
	inventoryRoutes.GET("/items/stats", inventoryHandler.Stats)
	inventoryRoutes.GET("/items/:id", inventoryHandler.GetByProductID)
	inventoryRoutes.PUT("/items/:id/stock", inventoryHandler.UpdateStock)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.GET("/sellers", sellerHandler.List)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)

	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.POST("/sales", saleHandler.Create)
	tradeRoutes.GET("/sales", saleHandler.List)
	tradeRoutes.GET("/sales/stats", saleHandler.Stats)
	tradeRoutes.GET("/sales/:id", saleHandler.GetByID)

	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/general", reportHandler.GeneralStats)
	reportRoutes.GET("/top-products", reportHandler.TopProducts)
	reportRoutes.GET("/top-sellers", reportHandler.TopSellers)
	reportRoutes.GET("/monthly-sales", reportHandler.MonthlySales)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(partnerRoutes).
		Register(tradeRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
