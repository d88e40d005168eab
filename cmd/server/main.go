// Package main is the entry point of the wallet service.
// It loads configuration, opens storage and the cache, and serves the API.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digiwallet/internal/config"
	"digiwallet/internal/logger"
	"digiwallet/internal/repositories"
	"digiwallet/internal/repositories/cache"
	"digiwallet/internal/repositories/memory"
	"digiwallet/internal/routes"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	store, db, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}
	if db != nil {
		defer func() {
			if err := repositories.Close(db); err != nil {
				log.Warn().Err(err).Msg("failed to close database connection")
			}
		}()
	}

	var (
		appCache   cache.Cache
		redisCache *cache.RedisCache
	)
	if cfg.Redis.Enabled() {
		redisCache = cache.NewRedisCache(cache.NewRedisClient(cfg.Redis), cfg.Redis.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, requests will fall back to storage")
		} else if n, err := redisCache.Purge(ctx, cache.Prefixes...); err != nil {
			log.Warn().Err(err).Msg("failed to clear cached entries")
		} else {
			log.Info().Int("keys", n).Msg("cached entries cleared on startup")
		}
		cancel()
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis connection")
			}
		}()
		appCache = redisCache
	}
	go logPoolStats(db, redisCache)

	app := routes.NewApp(routes.Options{
		Store:         store,
		Cache:         appCache,
		JWT:           cfg.JWT,
		CORSOrigins:   cfg.CORSOrigins,
		AuthRateLimit: cfg.AuthRateLimit,
		AccessLog:     !cfg.IsProduction(),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

// openStore returns the configured store. db is nil for the memory driver.
func openStore(cfg config.Config) (repositories.Store, *gorm.DB, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return memory.New(), nil, nil
	case config.StorageDriverPostgres:
		db, err := repositories.OpenPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("connected to database with connection pooling")
		return repositories.NewStore(db), db, nil
	}
	return nil, nil, errors.New("unknown storage driver: " + cfg.StorageDriver)
}

// logPoolStats logs connection pool usage every minute. Either argument may
// be nil.
func logPoolStats(db *gorm.DB, redisCache *cache.RedisCache) {
	if db == nil && redisCache == nil {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				stats := sqlDB.Stats()
				log.Debug().
					Int("open", stats.OpenConnections).
					Int("idle", stats.Idle).
					Int("in_use", stats.InUse).
					Int64("wait_count", stats.WaitCount).
					Dur("wait_duration", stats.WaitDuration).
					Msg("db pool stats")
			}
		}
		if redisCache != nil {
			stats := redisCache.Stats()
			log.Debug().
				Uint32("hits", stats.Hits).
				Uint32("misses", stats.Misses).
				Uint32("timeouts", stats.Timeouts).
				Uint32("total_conns", stats.TotalConns).
				Uint32("idle_conns", stats.IdleConns).
				Msg("redis pool stats")
		}
	}
}
