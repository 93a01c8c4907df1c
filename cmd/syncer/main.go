package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"agrinews/internal/bookmarks"
	"agrinews/internal/config"
	"agrinews/internal/publisher"
	"agrinews/internal/scheduler"
	"agrinews/internal/service"
	"agrinews/internal/source/wordpress"
	"agrinews/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Open the bookmark store so its schema exists for reading clients that
	// share the database file.
	bookmarkStore, err := bookmarks.Open(cfg.Bookmarks.Path)
	if err != nil {
		logger.Error("failed to open bookmark store", "path", cfg.Bookmarks.Path, "error", err)
		os.Exit(1)
	}
	defer bookmarkStore.Close()
	logger.Info("bookmark store ready", "path", cfg.Bookmarks.Path)

	// Initialize stores
	articleStore := postgres.NewArticleStore(db)
	categoryStore := postgres.NewCategoryStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize WordPress source
	wpSource := wordpress.New(wordpress.Config{
		BaseURL:        cfg.WordPress.BaseURL,
		PerPage:        cfg.WordPress.PerPage,
		MediaPerPage:   cfg.WordPress.MediaPerPage,
		VideoPostType:  cfg.WordPress.VideoPostType,
		Timeout:        cfg.WordPress.Timeout,
		MaxAttempts:    cfg.WordPress.Retry.MaxAttempts,
		InitialBackoff: cfg.WordPress.Retry.InitialBackoff,
		MaxBackoff:     cfg.WordPress.Retry.MaxBackoff,
	}, logger)

	// Create sync service for the WordPress source
	syncService := service.NewSyncService(
		wpSource,
		articleStore,
		categoryStore,
		syncStateStore,
		txManager,
		rabbitMQ,
		logger,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting news syncer",
		"source", wpSource.Name(),
		"base_url", cfg.WordPress.BaseURL,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
