package main

import (
	"context"
	"errors"
	"fmt"
	"landmark-explorer/internal/api"
	"landmark-explorer/internal/api/controllers"
	"landmark-explorer/internal/assets"
	"landmark-explorer/internal/config"
	"landmark-explorer/internal/database"
	"landmark-explorer/internal/logger"
	"landmark-explorer/internal/repository"
	"landmark-explorer/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal("Invalid configuration: ", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Logger.Fatal("Failed to configure logger: ", err)
	}

	// The asset ships with the binary; failing to decode it is a packaging error.
	fsys, name := assets.Source(cfg.AssetPath)
	landmarks, err := repository.LoadLandmarks(fsys, name)
	if err != nil {
		logger.Logger.WithField("asset", name).Fatal(err)
	}

	landmarkRepo, err := repository.NewLandmarkRepository(landmarks)
	if err != nil {
		logger.Logger.Fatal(err)
	}

	if err := run(cfg, landmarkRepo); err != nil {
		logger.Logger.Fatal(err)
	}
}

// run owns every resource that needs closing, so its defers complete before
// main exits on an error.
func run(cfg *config.Config, landmarkRepo repository.LandmarkRepository) error {
	var publishers []services.ChangePublisher
	backends := map[string]controllers.Pinger{}
	deps := api.Dependencies{HealthBackends: backends}

	if cfg.DatabaseURL != "" {
		db, err := database.InitDB(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying *sql.DB instance: %w", err)
		}
		defer sqlDB.Close()

		auditLogService := services.NewAuditLogService(repository.NewAuditLogRepository(db))
		publishers = append(publishers, auditLogService)
		deps.AuditLogService = auditLogService
		backends["database"] = sqlDB.PingContext
	}

	if cfg.Cache.Enabled() {
		redisPublisher, err := services.NewRedisChangePublisher(cfg.Cache)
		if err != nil {
			return err
		}
		defer redisPublisher.Close()

		publishers = append(publishers, redisPublisher)
		backends["redis"] = redisPublisher.Ping
		deps.LastChangeReader = redisPublisher
	}

	deps.LandmarkService = services.NewLandmarkService(landmarkRepo, publishers...)
	deps.LandmarkStatsService = services.NewLandmarkStatsService(landmarkRepo)
	router := api.SetupRoutes(deps)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	logger.LogEvent(logrus.InfoLevel, "Server starting", logrus.Fields{
		"port":      cfg.Port,
		"landmarks": landmarkRepo.Count(),
		"database":  cfg.DatabaseURL != "",
		"redis":     cfg.Cache.Enabled(),
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return serve(srv, stop)
}

// serve runs srv until it fails or a signal arrives on stop, then shuts it
// down gracefully.
func serve(srv *http.Server, stop <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	logger.Logger.Info("Server stopped")
	return nil
}
