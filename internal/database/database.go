package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hr-entity-api/internal/config"
	"github.com/hr-entity-api/internal/logging"
	"github.com/hr-entity-api/migrations"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с PostgreSQL, повторяя попытки раз в секунду,
// пока БД не станет доступна или не закончатся попытки.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		db, err = open(ctx, cfg.DSN(), logger)
		if err == nil {
			logger.Info("connected to database", slog.String("host", cfg.Host), slog.String("dbname", cfg.DBName))
			return db, nil
		}

		logger.Warn("database is not ready", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.MaxAttempts, err)
}

func open(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logging.GormLogger(logger),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate применяет встроенные миграции. dialect - имя диалекта goose
// ("postgres" в работе, "sqlite3" в тестах).
func Migrate(db *sql.DB, dialect string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
