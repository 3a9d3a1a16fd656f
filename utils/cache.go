// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for actor-profile caching. The auth
// middleware resolves a verified subject id to its users document on every
// request; the cache keeps that lookup off Mongo's hot path.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for actor-profile caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for actor-profile caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
