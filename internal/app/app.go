// Package app assembles the shortening service: storage, service layer and HTTP server.
package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/api/rest"
	"github.com/danilovkiri/dk_go_shortify/internal/config"
	"github.com/danilovkiri/dk_go_shortify/internal/service/shortener/v1"
	"github.com/danilovkiri/dk_go_shortify/internal/storage"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/cached"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/infile"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/inpsql"
)

// Storage kinds selected by the configuration.
const (
	StoragePostgres = "postgres"
	StorageFile     = "file"
	StorageMemory   = "memory"
)

// App holds the running service.
type App struct {
	Config  *config.Config
	Storage storage.URLStorage
	Server  *http.Server
	wg      *sync.WaitGroup
	log     *zap.SugaredLogger
}

// StorageKind returns the storage cfg selects: DATABASE_DSN wins over FILE_STORAGE_PATH, memory is
// the fallback.
func StorageKind(cfg *config.Config) string {
	switch {
	case cfg.DatabaseDSN != "":
		return StoragePostgres
	case cfg.FileStoragePath != "":
		return StorageFile
	default:
		return StorageMemory
	}
}

// New initializes storage and server. Storage goroutines stop when ctx is done.
func New(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	app := &App{
		Config: cfg,
		wg:     &sync.WaitGroup{},
		log:    log,
	}
	var err error
	switch StorageKind(cfg) {
	case StoragePostgres:
		app.Storage, err = inpsql.InitStorage(ctx, app.wg, cfg.DatabaseDSN, log)
	case StorageFile:
		app.Storage, err = infile.InitStorage(ctx, app.wg, cfg.FileStoragePath, log)
	default:
		app.Storage = inmemory.InitStorage(log)
	}
	if err != nil {
		return nil, err
	}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		app.Storage = cached.NewStorage(app.Storage, redisClient, log)
		log.Infow("Redis cache enabled", "addr", cfg.RedisAddr)
	}
	processor, err := shortener.InitShortener(app.Storage)
	if err != nil {
		return nil, err
	}
	app.Server, err = rest.InitServer(cfg, processor, log)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Start serves until the server is shut down.
func (app *App) Start() error {
	app.log.Infow("Server start attempted", "address", app.Config.ServerAddress, "storage", StorageKind(app.Config))
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server; storage is released once the context passed to New is done and
// Wait returns.
func (app *App) Shutdown(ctx context.Context) error {
	app.log.Info("Server shutdown attempted")
	return app.Server.Shutdown(ctx)
}

// Wait blocks until storage goroutines have released their resources, then closes the storage.
func (app *App) Wait() {
	app.wg.Wait()
	if err := app.Storage.CloseDB(); err != nil {
		app.log.Errorw("Storage closure failed", "error", err)
		return
	}
	app.log.Info("Storage closed successfully")
}
