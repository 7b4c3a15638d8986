package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hr-entity-api/internal/app"
	"github.com/hr-entity-api/internal/cache"
	"github.com/hr-entity-api/internal/config"
	"github.com/hr-entity-api/internal/database"
	"github.com/hr-entity-api/internal/handler"
	"github.com/hr-entity-api/internal/logging"
	"github.com/hr-entity-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	var console io.Writer
	if cfg.Log.Console {
		console = os.Stdout
	}
	logger, logFile := logging.Setup(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.SlogLevel(),
		Console: console,
	})
	defer logFile.Close()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// денежные поля отдаются числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(sqlDB, "postgres", logger); err != nil {
		return err
	}

	// Кэш второго уровня
	var c cache.Cache = cache.Noop{}
	if cfg.Cache.Enabled {
		rdb, err := cache.Connect(ctx, cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return err
		}
		defer rdb.Close()
		c = cache.NewRedisCache(rdb)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services := app.NewServices(db, c, cfg.Cache, logger)
	router := handler.NewRouter(services, metrics.NewHTTP(reg), logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is starting", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		return err
	}
	return <-errCh
}
