package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis backs all per-visitor state (view sessions, carts, wishlists)
// and the rate limiter.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Local fallback so the storefront runs without a .env
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, falling back to", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	log.Println("✅ Redis connected, visitor state ready")
}
