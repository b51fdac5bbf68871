package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"jobbridge/internal/config"
	"jobbridge/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "jobbridge:"
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis stores JSON values under a namespaced key. Without a reachable
// server every read is a miss and every write is dropped.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
	prefix string

	warned atomic.Bool
}

// NewRedis pings the server once. A failed ping leaves the cache disabled for
// the life of the process.
func NewRedis(cfg config.RedisConfig, log *zap.Logger) *Redis {
	log = logger.OrNop(log)
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, bypassing cache", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		client = nil
	}

	return newRedis(client, cfg.TTL, cfg.KeyPrefix, log)
}

// NewFromClient wraps an existing client, which may be nil.
func NewFromClient(client *redis.Client, ttl time.Duration, log *zap.Logger) *Redis {
	return newRedis(client, ttl, "", logger.OrNop(log))
}

func newRedis(client *redis.Client, ttl time.Duration, prefix string, log *zap.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Redis{client: client, logger: log, ttl: ttl, prefix: prefix}
}

func (r *Redis) disabled() bool {
	return r == nil || r.client == nil
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

// degraded logs the first failure after startup; later ones are only
// returned.
func (r *Redis) degraded(op string, err error) error {
	if r.warned.CompareAndSwap(false, true) {
		r.logger.Warn("redis call failed, serving without cache", zap.String("op", op), zap.Error(err))
	}
	return fmt.Errorf("redis %s: %w", op, err)
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.disabled() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.disabled() {
		return nil
	}
	return r.client.Close()
}

// GetJSON decodes the value at key into out and reports whether it was found.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.disabled() {
		return false, nil
	}
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.degraded("get", err)
	case len(raw) == 0:
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value for ttl, or for the configured default when ttl <= 0.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.disabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), raw, ttl).Err(); err != nil {
		return r.degraded("set", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if r.disabled() || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return r.degraded("del", err)
	}
	return nil
}
