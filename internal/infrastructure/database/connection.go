package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"corpsbank/internal/infrastructure/persistence/models"
	"corpsbank/internal/shared/config"
	apperrors "corpsbank/internal/shared/errors"
	appLogger "corpsbank/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the sqlite database with bounded retries. Transient open
// failures (locked or unreadable file) are retried with a fixed delay before
// surfacing as a service-unavailable error.
func Init(cfg *config.DatabaseConfig) error {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormLogger := logger.New(
		&slogWriter{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	delay := time.Duration(cfg.RetryDelaySec) * time.Second

	var database *gorm.DB
	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		database, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
			Logger: gormLogger,
		})
		if err == nil {
			appLogger.Debug("database connection established", "attempt", attempt)
			break
		}
		appLogger.Error("database connection failed", "attempt", attempt, "error", err)
		if attempt < retries {
			time.Sleep(delay)
		}
	}
	if err != nil {
		return apperrors.NewUnavailableError(
			fmt.Sprintf("failed to connect to database after %d attempts", retries),
			err.Error(),
		)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A single connection serializes all access to the sqlite file.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established", "path", cfg.Path)

	return nil
}

// AutoMigrate creates the submissions table, including the unique index on
// account_number that enforces the duplicate-prevention invariant at the
// schema level.
func AutoMigrate() error {
	current := Get()
	if current == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := current.AutoMigrate(&models.SubmissionModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	appLogger.Info("database schema migrated")
	return nil
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// slogWriter routes gorm's log lines into the application logger
type slogWriter struct{}

func (w *slogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR") {
		appLogger.Error("database error", "details", msg)
	} else if strings.Contains(msg, "slow sql") || strings.Contains(msg, "SLOW SQL") {
		appLogger.Warn("slow query", "details", msg)
	} else {
		appLogger.Debug("database query", "details", msg)
	}
}
