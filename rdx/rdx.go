package rdx

import (
	"log"
	"os"
	"time"

	"grillz/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// RdxGet fetches a string value; empty string when the key is absent.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// RdxSet stores a string value without expiry.
func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

// RdxSetTTL stores a string value with an expiry.
func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// RdxDel removes a key; missing keys are not an error.
func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// MustPing logs connectivity at startup without failing the process; the
// storage layer degrades to in-memory state when Redis is unreachable.
func MustPing() {
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unreachable at startup: %v", err)
	}
}
