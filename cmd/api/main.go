package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-surfbuddy/internal/config"
	"backend-surfbuddy/internal/db"
	"backend-surfbuddy/internal/photo"
	"backend-surfbuddy/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig     func() config.Config
	connectRedis   func(config.Config) *redis.Client
	connectPhotos  func(context.Context, config.Config) (photo.ObjectStore, error)
	notify         func(chan<- os.Signal, ...os.Signal)
	run            func(context.Context, config.Config, *redis.Client, photo.ObjectStore, *zap.Logger, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:   config.Load,
		connectRedis: db.ConnectRedis,
		connectPhotos: func(ctx context.Context, cfg config.Config) (photo.ObjectStore, error) {
			return photo.Connect(ctx, cfg.PhotoBucket)
		},
		notify: signal.Notify,
		run:    Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Printf("logger init failed: %v", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	rdb := deps.connectRedis(cfg)

	photos, err := deps.connectPhotos(context.Background(), cfg)
	if err != nil {
		logger.Warn("photo storage unavailable, uploads disabled", zap.Error(err))
		photos = nil
	}

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, rdb, photos, logger, signals, nil); err != nil {
		logger.Error("server exited with error", zap.Error(err))
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, rdb *redis.Client, photos photo.ObjectStore, logger *zap.Logger, signals <-chan os.Signal, listen ListenFunc) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := server.NewServer(cfg, rdb, photos, logger)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(srv.App, shutdownCtx); err != nil {
		return err
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	return nil
}
