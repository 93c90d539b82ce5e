// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"serenia/config"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCachePrefix is the prefix for cached day-availability snapshots.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL bounds how stale a cached day snapshot may get.
const AvailabilityCacheTTL = 5 * time.Minute

// CacheClient is the client for the read-side availability cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the availability cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCacheKey builds the snapshot key for one associate day.
func AvailabilityCacheKey(associateID, date string) string {
	return AvailabilityCachePrefix + associateID + ":" + date
}
