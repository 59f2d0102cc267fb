package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mockapi/installation-api/internal/config"
	"github.com/mockapi/installation-api/internal/handlers"
	"github.com/mockapi/installation-api/internal/middleware"
	"github.com/mockapi/installation-api/internal/service"
	"github.com/mockapi/installation-api/internal/tracking"
	"github.com/mockapi/installation-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting mock installation api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"tracking_prefix", cfg.Tracking.Prefix,
	)

	generator := tracking.NewGenerator(cfg.Tracking.Prefix)
	installationService := service.NewInstallationService(generator, service.ServiceInfo{
		Name:    cfg.Service.Name,
		Version: cfg.Service.Version,
	})

	r := newRouter(cfg, log, installationService)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newRouter wires middleware and routes around the installation service
func newRouter(cfg *config.Config, log *slog.Logger, svc *service.InstallationService) http.Handler {
	healthHandler := handlers.NewHealthHandler(svc, log)
	installationHandler := handlers.NewInstallationHandler(svc, log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Probe endpoint for containers
	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api/vendor/installation", func(r chi.Router) {
		r.Post("/register", installationHandler.Register)
		r.Post("/cancel", installationHandler.Cancel)
		r.Get("/health", healthHandler.ServeHTTP)
		r.Get("/tracking/{trackingCode}", installationHandler.Track)
	})

	return r
}
