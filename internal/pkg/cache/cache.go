package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/newsnotes-app/newsnotes/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// Enabled reports whether a cache server is configured. Sessions fall back to
// in-memory storage when it is not (local dev, tests).
func Enabled() bool {
	return env.GetEnv("CACHE_ENABLED", "false") == "true"
}

// SetupCache initializes the connection to the Redis cache server
func SetupCache() {
	if !Enabled() {
		log.Println("Cache disabled, sessions will use in-memory storage")
		return
	}

	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0, // use default DB
	})

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to cache: %v", err)
	} else {
		log.Printf("Successfully connected to cache: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}
