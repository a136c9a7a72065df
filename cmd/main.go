package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-info-gateway/internal/config"
	"movie-info-gateway/internal/database"
	"movie-info-gateway/internal/handler"
	"movie-info-gateway/internal/middleware"
	"movie-info-gateway/internal/service"
	"movie-info-gateway/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache and rate limiting", "error", err)
	}

	// Initialize layers
	api := upstream.NewClient(cfg.Upstream)
	cache := service.NewCache(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	catalogHandler := handler.NewCatalogHandler(service.NewCatalogService(api, cache))
	personHandler := handler.NewPersonHandler(service.NewPersonService(api, cache))
	authService := service.NewAuthService(api)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(cache, authService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Info Gateway",
		ServerHeader: "Movie-Info-Gateway",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindowSeconds).Handler())

	// Swagger docs
	swaggerYAML, err := os.ReadFile(cfg.SwaggerPath)
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	handler.RegisterRoutes(app, catalogHandler, personHandler, authHandler, adminHandler)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down gateway...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie info gateway", "addr", addr, "upstream", cfg.Upstream.BaseURL)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	if rdb != nil {
		_ = rdb.Close()
	}
}
