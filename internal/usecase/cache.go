package usecase

import (
	"context"
	"time"
)

// Cache is the subset of the Redis cache the usecases rely on. Implementations
// must treat an unreachable server as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
