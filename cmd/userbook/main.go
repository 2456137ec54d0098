package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"userbook/internal/api"
	"userbook/internal/api/handlers"
	"userbook/internal/repository"
	"userbook/internal/service"
	"userbook/pkg/config"
	"userbook/pkg/flash"
	"userbook/pkg/logger"
	"userbook/pkg/postgres"

	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting userbook service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository and service
	userRepo := repository.NewUserRepository(db, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// Flash messages live in a server-side session across redirects
	flashStore := flash.New()

	// Initialize handlers
	usersHandler := handlers.NewUsersHandler(userService, flashStore, appLogger)
	pagesHandler := handlers.NewPagesHandler()

	// Setup router
	views := html.New("./web/templates", ".html")
	app := api.SetupRouter(usersHandler, pagesHandler, views, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
