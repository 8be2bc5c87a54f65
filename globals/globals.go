package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(EnvOr("SESSION_SECRET", "grillz-dev-secret"))

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

var Ctx = context.Background()

// EnvOr returns the environment value for key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
