package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"medstock/internal/alerts"
	"medstock/internal/caching"
	"medstock/internal/config"
	"medstock/internal/handlers"
	"medstock/internal/jobs"
	"medstock/internal/jobs/background"
	"medstock/internal/middleware"
	"medstock/internal/repositories"
	"medstock/internal/services"
	"medstock/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg := loadConfig()

	// Database connection
	pool, err := database.NewPool(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis cache
	redisClient := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	cacheSvc := caching.NewRedisCacheService(redisClient)

	// MinIO for report exports
	minioSvc, err := services.NewMinioService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	// Repositories
	productRepo := repositories.NewProductRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)

	// Alert engine seeded with the configured defaults
	configStore, err := alerts.NewConfigStoreWith(cfg.Alerts.ApplyTo(alerts.DefaultConfig()))
	if err != nil {
		log.Fatalf("Invalid alert configuration: %v", err)
	}
	evaluator := alerts.NewEvaluator(configStore)

	// Services
	productSvc := services.NewProductService(productRepo, supplierRepo, cacheSvc)
	supplierSvc := services.NewSupplierService(supplierRepo)
	alertSvc := services.NewAlertService(productRepo, evaluator, cacheSvc)
	reportSvc := services.NewReportService(alertSvc, minioSvc, cfg.Minio.Bucket)

	// Background jobs
	stockMonitor := jobs.NewStockMonitor(productRepo, alertSvc)
	scheduler, err := background.NewJobScheduler(stockMonitor, time.Duration(cfg.Jobs.StockMonitorIntervalMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Handlers
	productHandlers := handlers.NewProductHandlers(productSvc)
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	alertHandlers := handlers.NewAlertHandlers(alertSvc, reportSvc)
	jobHandlers := handlers.NewJobHandlers(scheduler, stockMonitor)
	healthHandlers := handlers.NewHealthHandlers(pool, redisClient)

	// Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no tenant required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes, tenant-scoped
	v1 := e.Group("/v1")
	v1.Use(middleware.TenantMiddleware())

	// Alert routes
	v1.GET("/alerts", alertHandlers.ListAlerts)
	v1.GET("/alerts/stats", alertHandlers.GetAlertStats)
	v1.GET("/alerts/recommendations", alertHandlers.GetOrderRecommendations)
	v1.POST("/alerts/recommendations/export", alertHandlers.ExportRecommendations)
	v1.GET("/alerts/config", alertHandlers.GetAlertConfig)
	v1.PATCH("/alerts/config", alertHandlers.UpdateAlertConfig)

	// Product routes
	v1.GET("/products", productHandlers.ListProducts)
	v1.POST("/products", productHandlers.CreateProduct)
	v1.GET("/products/:id", productHandlers.GetProduct)
	v1.PUT("/products/:id", productHandlers.UpdateProduct)
	v1.DELETE("/products/:id", productHandlers.DeleteProduct)

	// Supplier routes
	v1.GET("/suppliers", supplierHandlers.ListSuppliers)
	v1.POST("/suppliers", supplierHandlers.CreateSupplier)
	v1.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	v1.PUT("/suppliers/:id", supplierHandlers.UpdateSupplier)
	v1.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier)

	// Job routes
	v1.GET("/jobs", jobHandlers.GetJobStatus)
	v1.POST("/jobs/stock-monitor/run", jobHandlers.TriggerStockMonitor)

	log.Printf("Medstock server v%s starting on port %d", version, cfg.Server.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}

// loadConfig reads the optional TOML config file and overlays environment
// variables on top. Environment always wins so deployments can override a
// baked-in file.
func loadConfig() *config.AppConfig {
	cfg := &config.AppConfig{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", path, err)
		}
		cfg = loaded
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = db
		}
	}

	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		cfg.Minio.Endpoint = endpoint
	}
	if cfg.Minio.Endpoint == "" {
		cfg.Minio.Endpoint = "localhost:9000"
	}
	if accessKey := os.Getenv("MINIO_ACCESS_KEY"); accessKey != "" {
		cfg.Minio.AccessKey = accessKey
	}
	if cfg.Minio.AccessKey == "" {
		cfg.Minio.AccessKey = "minioadmin"
	}
	if secretKey := os.Getenv("MINIO_SECRET_KEY"); secretKey != "" {
		cfg.Minio.SecretKey = secretKey
	}
	if cfg.Minio.SecretKey == "" {
		cfg.Minio.SecretKey = "minioadmin"
	}
	if os.Getenv("MINIO_USE_SSL") == "true" {
		cfg.Minio.UseSSL = true
	}
	if bucket := os.Getenv("MINIO_BUCKET"); bucket != "" {
		cfg.Minio.Bucket = bucket
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "medstock-reports"
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Fatalf("Invalid port %s: %v", portStr, err)
		}
		cfg.Server.Port = port
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	return cfg
}
