package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/turf-kings/brackets"
	"github.com/Dosada05/turf-kings/config"
	"github.com/Dosada05/turf-kings/db"
	"github.com/Dosada05/turf-kings/handlers"
	"github.com/Dosada05/turf-kings/models"
	"github.com/Dosada05/turf-kings/repositories"
	api "github.com/Dosada05/turf-kings/routes"
	"github.com/Dosada05/turf-kings/services"
	"github.com/Dosada05/turf-kings/storage"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// @title Turf Kings API
// @version 1.0
// @description Три команды, победитель остаётся на поле.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("db_driver", cfg.DatabaseDriver),
		slog.Bool("backup_upload", cfg.BackupUploadEnabled()),
	)

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	snapshotRepo := repositories.NewSnapshotRepository(dbConn, repositories.Dialect(cfg.DatabaseDriver))
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	err = snapshotRepo.EnsureSchema(schemaCtx)
	cancelSchema()
	if err != nil {
		logger.Error("failed to prepare database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Загрузчик бэкапов (Cloudflare R2) необязателен.
	var backupUploader storage.FileUploader
	if cfg.BackupUploadEnabled() {
		backupUploader, err = storage.NewCloudflareR2Uploader(context.Background(), storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	defer wsHub.Stop()
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	ledger, err := services.NewLedger(models.DefaultTeams(), brackets.NewWinnerStaysOn())
	if err != nil {
		logger.Error("failed to create ledger", slog.Any("error", err))
		os.Exit(1)
	}
	tournamentService := services.NewTournamentService(ledger, snapshotRepo, wsHub, logger)
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 10*time.Second)
	err = tournamentService.Restore(restoreCtx)
	cancelRestore()
	if err != nil {
		logger.Error("failed to restore tournament", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("tournament ready", slog.String("rotation", ledger.PolicyName()))

	sessionService := services.NewSessionService(tournamentService, wsHub, logger)
	statsService := services.NewStatsService(ledger)
	backupService := services.NewBackupService(tournamentService, backupUploader, logger)
	accessService, err := services.NewAccessService(cfg.AdminCode, cfg.CaptainCodes)
	if err != nil {
		logger.Error("failed to initialize access codes", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	routeHandlers := api.Handlers{
		Auth:       handlers.NewAuthHandler(accessService, cfg.JWTSecretKey),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Session:    handlers.NewSessionHandler(sessionService),
		Stats:      handlers.NewStatsHandler(statsService),
		Backup:     handlers.NewBackupHandler(backupService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, tournamentService, cfg.CORSAllowedOrigins, logger),
	}

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, routeHandlers, api.Options{
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestLogger: chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
			Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
			NoColor: true,
		}),
	})
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
