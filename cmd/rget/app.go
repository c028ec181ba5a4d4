package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/rget/pkg/engine"
	"github.com/dmitrymomot/rget/pkg/export"
	"github.com/dmitrymomot/rget/pkg/logger"
	"github.com/dmitrymomot/rget/pkg/redis"
	"github.com/dmitrymomot/rget/pkg/store"
)

// app carries the dependencies shared by every command.
type app struct {
	cfg    Config
	log    *slog.Logger
	store  store.Store
	engine *engine.Engine
	stdout io.Writer
	stderr io.Writer

	// newExporter resolves an output target; replaced in tests.
	newExporter func(ctx context.Context, target string) (export.Exporter, error)
}

func newApp(cfg Config, log *slog.Logger, st store.Store, stdout, stderr io.Writer) *app {
	a := &app{
		cfg:    cfg,
		log:    log,
		store:  st,
		stdout: stdout,
		stderr: stderr,
		engine: engine.New(st,
			engine.WithLogger(log),
			engine.WithCacheSize(cfg.ExprCacheSize),
		),
	}
	a.newExporter = a.exporter
	return a
}

func (a *app) exporter(ctx context.Context, target string) (export.Exporter, error) {
	if export.IsS3URL(target) {
		return export.NewS3Exporter(ctx, a.cfg.S3, target)
	}
	return export.NewLocalExporter(target)
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	switch format {
	case logger.FormatText, logger.FormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}

// openStore returns the configured backend and a function releasing it.
func openStore(ctx context.Context, cfg Config, log *slog.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case driverMemory:
		return store.NewMemoryStore(), noop, nil

	case driverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("connected to redis", logger.Store(driverRedis))
		st := redis.NewStorage(client, cfg.Redis.KeyPrefix)
		return st, st.Close, nil

	default:
		st, err := store.NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("opened store", logger.Store(driverFile), logger.Path(st.Path()))
		return st, noop, nil
	}
}
