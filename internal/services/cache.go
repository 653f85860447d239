package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daybook-app/backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached lookup data
	CacheKeyPrefix = "cache:"
	// DefaultCacheTTL is how long lookup results stay cached
	DefaultCacheTTL = 8 * time.Hour
)

// GetCache retrieves a cached value and unmarshals it into dest.
// A miss is not an error.
func GetCache(key string, dest interface{}) (bool, error) {
	ctx := context.Background()

	val, err := database.RedisClient.Get(ctx, CacheKeyPrefix+key).Result()
	if err != nil {
		return false, nil // Cache miss
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

// SetCache stores a value in cache with the default TTL
func SetCache(key string, value interface{}) error {
	ctx := context.Background()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return database.RedisClient.Set(ctx, CacheKeyPrefix+key, jsonData, DefaultCacheTTL).Err()
}

// CacheKey generates a cache key for a specific resource
func CacheKey(resource string, identifier string) string {
	return fmt.Sprintf("%s:%s", resource, identifier)
}
