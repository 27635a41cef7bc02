package utils

import (
	"context"
	"time"

	"slowlove/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient caches the last known-good slot status snapshot so a restart
// does not begin with an empty capacity view.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. A missing Redis is not fatal:
// the poller falls back to in-memory snapshots only.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("Redis cache unavailable, running without snapshot cache: %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
