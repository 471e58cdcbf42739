package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authConfig "givehub-admin/internal/auth/config"
	dashboardConfig "givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/di"
	"givehub-admin/internal/shared/accesslog"
	"givehub-admin/internal/shared/database"
	"givehub-admin/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string `env:"SERVER_HOST" envDefault:"localhost"`
	Port         string `env:"SERVER_PORT" envDefault:"3000"`
	AllowOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:4200"`
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
}

func main() {
	fmt.Println("🚀 GiveHub Admin Dashboard - Starting Application...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewLogger()

	// Load module configurations
	authCfg, err := authConfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load session configuration: %v", err)
	}

	mongoCfg, err := database.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load MongoDB configuration: %v", err)
	}

	dashCfg, err := dashboardConfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load dashboard configuration: %v", err)
	}
	appLogger.Info("Application configuration loaded successfully")

	// Initialize Dependency Injection Container
	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	if err := container.InitializeDatabases(initCtx, authCfg, mongoCfg); err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}

	if err := container.InitializeModules(dashCfg); err != nil {
		log.Fatalf("Failed to initialize modules: %v", err)
	}
	appLogger.Infof("Session and dashboard modules initialized; platform API at %s", dashCfg.PlatformBaseURL)

	// Access log writes one structured line per request
	accessLogger, err := accesslog.NewZapLogger(serverCfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize access logger: %v", err)
	}
	defer func() {
		_ = accessLogger.Sync()
	}()

	// Setup HTTP server (Fiber) with middleware
	app := fiber.New(fiber.Config{
		AppName:      "GiveHub Admin API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fiberErr, ok := err.(*fiber.Error); ok {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"error": fiberErr.Message,
				})
			}
			appLogger.Errorf("Unhandled HTTP error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	authModule := container.GetAuthModule()
	dashboardModule := container.GetDashboardModule()
	middleware := authModule.GetMiddleware()

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CORS(serverCfg.AllowOrigins))
	app.Use(accesslog.New(accessLogger))

	// Health check endpoint with container health status
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "GiveHub Admin API is running",
			"timestamp": time.Now().UTC(),
			"modules": fiber.Map{
				"session":   "initialized",
				"dashboard": "initialized",
			},
		})
	})

	// Register module routes
	authModule.RegisterRoutes(app.Group("/api/v1/auth"))
	dashboardModule.RegisterRoutes(app.Group("/api/v1"), middleware)
	appLogger.Info("Session and dashboard routes registered")

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("🌟 All modules initialized. Starting HTTP server on %s", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)
		fmt.Println("🛑 Shutting down server gracefully...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}

	fmt.Println("✅ Application stopped gracefully.")
}
