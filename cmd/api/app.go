package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"dogs-registry/internal/adapters/auth/jwtauth"
	"dogs-registry/internal/adapters/auth/remote"
	"dogs-registry/internal/adapters/cache/rediscache"
	pg "dogs-registry/internal/adapters/storage/postgres"
	"dogs-registry/internal/config"
	"dogs-registry/internal/platform/logger"
	"dogs-registry/internal/router"
)

// app junta todo lo que necesitan los comandos: config, logger y conexiones.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	pool  *pgxpool.Pool
	redis *redis.Client
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		// Todavía no hay config: logger según LOG_LEVEL/LOG_FORMAT.
		logger.NewFromEnv().Error("config load failed", map[string]any{"err": err})
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	}).With(map[string]any{"env": cfg.App.Env})

	return &app{cfg: cfg, log: log}, nil
}

func (a *app) openDB(ctx context.Context) error {
	if !a.cfg.UsePostgres() {
		a.log.Info("using in-memory store", nil)
		return nil
	}
	pool, err := pg.Open(ctx, a.cfg.Database.DSN, pg.Options{MaxConns: a.cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	a.pool = pool
	a.log.Info("connected to postgres", nil)
	return nil
}

// openRedis no es fatal: sin Redis el catálogo se lee directo del store.
func (a *app) openRedis(ctx context.Context) {
	if !a.cfg.UseRedis() {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := rediscache.Ping(ctx, client); err != nil {
		a.log.Warn("redis unavailable, catalog cache disabled", map[string]any{"addr": a.cfg.Redis.Addr, "err": err})
		_ = client.Close()
		return
	}
	a.redis = client
	a.log.Info("catalog cache enabled", map[string]any{"addr": a.cfg.Redis.Addr, "ttl": a.cfg.Redis.CatalogTTL.String()})
}

func (a *app) routerOptions() (router.Options, error) {
	opts := router.Options{
		Redis:      a.redis,
		CatalogTTL: a.cfg.Redis.CatalogTTL,
		Logger:     a.log,
	}
	if a.pool != nil {
		opts.DB = a.pool
	}

	switch a.cfg.Auth.Mode {
	case config.AuthJWT:
		m, err := jwtauth.New(jwtauth.Config{
			Secret: a.cfg.Auth.JWTSecret,
			Issuer: a.cfg.Auth.JWTIssuer,
			TTL:    a.cfg.Auth.TokenTTL,
		})
		if err != nil {
			return router.Options{}, err
		}
		opts.AuthVerifier = m
		opts.TokenIssuer = m
	case config.AuthRemote:
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: a.cfg.Auth.RemoteURL,
			APIKey:  a.cfg.Auth.RemoteAPIKey,
			Timeout: a.cfg.Auth.RemoteTimeout,
		})
		if err != nil {
			return router.Options{}, err
		}
		opts.AuthVerifier = v
	default:
		a.log.Warn("auth mode dev: X-Debug-User-ID header is trusted", nil)
	}
	return opts, nil
}

func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
