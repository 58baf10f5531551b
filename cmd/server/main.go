package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-console-backend/internal/api/routes"
	"admin-console-backend/internal/audit"
	"admin-console-backend/internal/config"
	"admin-console-backend/internal/database"
	"admin-console-backend/internal/logger"
	"admin-console-backend/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

//	@title			Admin Console Backend API
//	@version		1.0
//	@description	Backend API of the admin console: users, groups, events, surveys, their relations and dashboard aggregates.

//	@host		localhost:3001
//	@BasePath	/api

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	dbLogLevel := gormlogger.Error
	if cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		dbLogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:        dbLogLevel,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		ConnectTimeout:  cfg.DBConnectTimeout,
		Seed:            cfg.DBSeed,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := observability.RegisterDBStats(sqlDB, cfg.DatabaseName); err != nil {
			logrus.WithError(err).Warn("Failed to register database pool metrics")
		}
	}

	shutdownTracing, err := observability.SetupTracing(context.Background(), cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logrus.WithError(err).Warn("Tracing disabled")
		shutdownTracing = func(context.Context) error { return nil }
	}

	publisher := audit.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, publisher, version)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Port, "version": version}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
	if err := publisher.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close audit publisher")
	}
	if err := shutdownTracing(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to flush traces")
	}
	if err := database.Close(db); err != nil {
		logrus.WithError(err).Warn("Failed to close database")
	}

	logrus.Info("Server exited")
}
