// Package cache provides the Redis-backed exercise catalog cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// KeyCatalogExercises holds the JSON encoded catalog listing.
const KeyCatalogExercises = "fitplan:catalog:exercises"

// redisCmdable is the subset of *redis.Client used by the cache.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type redisCatalogCache struct {
	client redisCmdable
	ttl    time.Duration
}

func newRedisCatalogCache(client redisCmdable, ttl time.Duration) *redisCatalogCache {
	return &redisCatalogCache{client: client, ttl: ttl}
}

func (c *redisCatalogCache) GetExercises(ctx context.Context) ([]*entity.Exercise, bool, error) {
	val, err := c.client.Get(ctx, KeyCatalogExercises).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "cache get error")
	}

	var exercises []*entity.Exercise
	if err := json.Unmarshal(val, &exercises); err != nil {
		return nil, false, errors.Wrap(err, "cache unmarshal error")
	}

	return exercises, true, nil
}

func (c *redisCatalogCache) SetExercises(ctx context.Context, exercises []*entity.Exercise) error {
	data, err := json.Marshal(exercises)
	if err != nil {
		return errors.Wrap(err, "cache marshal error")
	}

	if err := c.client.Set(ctx, KeyCatalogExercises, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "cache set error")
	}

	return nil
}

// noopCatalogCache always misses.
type noopCatalogCache struct{}

func (noopCatalogCache) GetExercises(context.Context) ([]*entity.Exercise, bool, error) {
	return nil, false, nil
}

func (noopCatalogCache) SetExercises(context.Context, []*entity.Exercise) error {
	return nil
}

// Params holds dependencies for the catalog cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache returns a Redis cache when catalogCache.addr is set and a no-op cache otherwise.
func NewCatalogCache(params Params) service.CatalogCache {
	cfg := params.Config.CatalogCache
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Catalog cache not configured, using no-op cache")

		return noopCatalogCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis only degrades reads to the store.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Catalog cache unreachable", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis catalog cache", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))

	return newRedisCatalogCache(client, cfg.TTL)
}

// Module provides the catalog cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogCache),
)
