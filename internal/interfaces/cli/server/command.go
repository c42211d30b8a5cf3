package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	backupUC "corpsbank/internal/application/backup/usecases"
	submissionUC "corpsbank/internal/application/submission/usecases"
	"corpsbank/internal/infrastructure/auth"
	"corpsbank/internal/infrastructure/backup"
	"corpsbank/internal/infrastructure/config"
	"corpsbank/internal/infrastructure/database"
	"corpsbank/internal/infrastructure/email"
	"corpsbank/internal/infrastructure/export"
	"corpsbank/internal/infrastructure/qrcode"
	"corpsbank/internal/infrastructure/repository"
	httpRouter "corpsbank/internal/interfaces/http"
	"corpsbank/internal/interfaces/http/handlers"
	"corpsbank/internal/interfaces/http/middleware"
	"corpsbank/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the registration HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("failed to migrate database schema", "error", err)
	}

	if cfg.QR.Enabled {
		if err := qrcode.Generate(cfg.Server.FormURL(), cfg.QR.Path, cfg.QR.Size); err != nil {
			// Registration still works without the poster image
			logger.Error("qr code generation failed", "error", err)
		} else {
			logger.Info("qr code generated", "path", cfg.QR.Path)
		}
	}

	log := logger.NewLogger()

	// One locker serializes repository writes with backup copies, so a
	// snapshot never captures a half-written file.
	writeMu := &sync.Mutex{}

	repo := repository.NewSubmissionRepository(database.Get(), writeMu, log)
	backupManager := backup.NewManager(cfg.Database.Path, cfg.Backup.Dir, writeMu, log)
	mailer := email.NewSMTPSender(cfg.Email)
	exporter := export.NewExcelExporter(cfg.Export.Dir)

	if cfg.Backup.OnStartup {
		if _, err := backupManager.CreateSnapshot(); err != nil {
			logger.Error("startup backup failed", "error", err)
		}
	}

	sessions := auth.NewSessionService(cfg.Session.JWTSecret, cfg.Session.ExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Admin.BcryptCost)

	submissionHandler := handlers.NewSubmissionHandler(
		submissionUC.NewSubmitRecordUseCase(repo, log),
		submissionUC.NewPreviewRecordUseCase(),
		log,
	)
	authHandler := handlers.NewAuthHandler(cfg.Admin, cfg.Session, sessions, hasher, log)
	adminHandler := handlers.NewAdminHandler(
		submissionUC.NewGetRecordUseCase(repo, log),
		submissionUC.NewUpdateRecordUseCase(repo, log),
		submissionUC.NewDeleteRecordUseCase(repo, log),
		submissionUC.NewListRecordsUseCase(repo, log),
		submissionUC.NewSearchRecordsUseCase(repo, log),
		submissionUC.NewExportRecordsUseCase(repo, exporter, log),
		submissionUC.NewForwardRecordUseCase(repo, mailer, log),
		log,
	)
	backupHandler := handlers.NewBackupHandler(
		backupUC.NewCreateSnapshotUseCase(backupManager, log),
		backupUC.NewListSnapshotsUseCase(backupManager, log),
		backupUC.NewViewSnapshotUseCase(backupManager, log),
		backupUC.NewGetSnapshotRecordUseCase(backupManager, log),
		log,
	)
	authMiddleware := middleware.NewAdminAuthMiddleware(sessions, cfg.Session.CookieName, log)

	router := httpRouter.NewRouter(submissionHandler, authHandler, adminHandler, backupHandler, authMiddleware, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "debug":
		return "debug"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
