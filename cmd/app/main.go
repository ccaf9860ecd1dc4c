package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sonar-pr-decoration/api"
	"sonar-pr-decoration/internal/config"
	"sonar-pr-decoration/internal/database"
	"sonar-pr-decoration/internal/handler"
	"sonar-pr-decoration/internal/repository"
	"sonar-pr-decoration/internal/session"
	"sonar-pr-decoration/internal/telemetry"
	"sonar-pr-decoration/internal/usecase"
	"sonar-pr-decoration/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries
	queries := database.New(db)

	// Репозитории
	projectRepo := repository.NewProjectRepository(queries)
	branchRepo := repository.NewBranchRepository(queries)
	measureRepo := repository.NewMeasureRepository(queries)
	snapshotRepo := repository.NewSnapshotRepository(queries)
	userRepo := repository.NewUserRepository(queries)
	permissionRepo := repository.NewPermissionRepository(db)

	// Use Cases
	prUC := usecase.NewPRUseCase(projectRepo, branchRepo, measureRepo, snapshotRepo)
	workerCount := worker.NewCountProvider(cfg.Settings)
	sessions := session.NewFactory(userRepo, permissionRepo)
	logger.WithField("worker_count", workerCount.Get()).Info("Compute engine workers configured")

	// Метрики
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewPrometheusMetrics(registry)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Handlers
	apiHandler := handler.NewAPIHandler(prUC, workerCount, handler.NewProtoBufWriter(), metrics, logger)
	ws := e.Group("", handler.AuthMiddleware(sessions, logger), handler.ErrorMiddleware())
	api.RegisterHandlers(ws, apiHandler)

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
