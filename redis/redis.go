package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken stores a revoked JWT until its natural expiry.
func BlacklistToken(token string, ttl time.Duration) error {
	return Client.Set(Ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked by logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	exists, err := Client.Exists(Ctx, "blacklist:"+token).Result()
	return err == nil && exists > 0
}
