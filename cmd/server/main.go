package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookatlas/book-discovery/internal/api/controller"
	"bookatlas/book-discovery/internal/api/repository"
	"bookatlas/book-discovery/internal/api/service"
	"bookatlas/book-discovery/internal/config"
	"bookatlas/book-discovery/internal/db"
	"bookatlas/book-discovery/internal/logger"
	"bookatlas/book-discovery/internal/server"
	"bookatlas/book-discovery/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// Initialize telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitOtel(cfg.Telemetry.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger.Init(cfg.Server.LogLevel)

	// Initialize SQLite DB
	database, err := db.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}
	defer database.Close()

	// Create repositories
	userRepo := repository.NewUserRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)
	historyRepo := repository.NewHistoryRepository(database)
	adminRepo := repository.NewAdminRepository(database)

	// Create services
	userService := service.NewUserService(userRepo, cfg.Bootstrap.AdminPassword)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	historyService := service.NewHistoryService(historyRepo)
	recommendationService := service.NewRecommendationService(favoriteRepo, historyRepo)
	adminService := service.NewAdminService(adminRepo)

	// Seed the default admin account
	if err := userService.EnsureAdmin(ctx); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// Create controllers
	userController := controller.NewUserController(userService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	historyController := controller.NewHistoryController(historyService)
	recommendationController := controller.NewRecommendationController(recommendationService)
	adminController := controller.NewAdminController(adminService)

	// Create the Gin-based server
	srv := server.NewServer(userController, favoriteController, historyController, recommendationController, adminController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
