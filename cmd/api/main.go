package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AppariLavanya/inventory-management-system/internal/cache"
	"github.com/AppariLavanya/inventory-management-system/internal/config"
	"github.com/AppariLavanya/inventory-management-system/internal/database"
	"github.com/AppariLavanya/inventory-management-system/internal/handler"
	"github.com/AppariLavanya/inventory-management-system/internal/middleware"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/service"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
	"github.com/AppariLavanya/inventory-management-system/internal/worker"
)

// main is the application entrypoint for the inventory management API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting inventory api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	tokenCache := cache.NewTokenCache(redisClient)

	// 4. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 5. Initialize services
	authSvc := service.NewAuthService(userRepo, tokenCache)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo)
	analyticsSvc := service.NewAnalyticsService(productRepo, orderRepo)
	exportSvc := service.NewExportService(productRepo, orderRepo, analyticsSvc)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db),
		Auth:      handler.NewAuthHandler(authSvc),
		Product:   handler.NewProductHandler(productSvc),
		Order:     handler.NewOrderHandler(orderSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Export:    handler.NewExportHandler(exportSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(tokenCache)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start workers
	go worker.NewLowStockWorker(productSvc, cfg.Worker.LowStockInterval, cfg.Worker.LowStockThreshold).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Analytics *handler.AnalyticsHandler
	Export    *handler.ExportHandler
}

func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/api/health", handlers.Health.GetHealth)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", jwtMiddleware.Handle(), handlers.Auth.Logout)
	}

	api := router.Group("/api")
	api.Use(jwtMiddleware.Handle())
	{
		api.GET("/products", handlers.Product.SearchProducts)
		api.POST("/products", handlers.Product.CreateProduct)
		api.GET("/products/:id", handlers.Product.GetProduct)
		api.PUT("/products/:id", handlers.Product.UpdateProduct)
		api.DELETE("/products/:id", handlers.Product.DeleteProduct)
		api.DELETE("/products", handlers.Product.DeleteProducts)
		api.GET("/low-stock", handlers.Product.GetLowStock)

		api.GET("/orders", handlers.Order.ListOrders)
		api.POST("/orders", handlers.Order.CreateOrder)
		api.GET("/orders/:id", handlers.Order.GetOrder)
		api.PUT("/orders/:id", handlers.Order.UpdateOrder)
		api.PATCH("/orders/:id/status", handlers.Order.UpdateOrderStatus)
		api.DELETE("/orders/:id", handlers.Order.DeleteOrder)

		api.GET("/analytics/summary", handlers.Analytics.GetSummary)
		api.GET("/analytics/sales-daily", handlers.Analytics.GetDailySales)
		api.GET("/analytics/low-stock", handlers.Product.GetLowStock)
		api.GET("/analytics/low-stock/summary", handlers.Analytics.GetLowStockSummary)

		api.GET("/export/csv", handlers.Export.DownloadCSV)
	}
}

func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
