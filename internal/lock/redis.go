// Package lock implements distributed locks on Redis.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned when the lock is still held by someone else after all
// retries.
var ErrNotObtained = errors.New("propman: lock not obtained")

// Config holds lock timing.
type Config struct {
	// TTL bounds how long a crashed holder keeps the lock.
	// Default: 30s
	TTL time.Duration

	// RetryInterval is the wait between attempts to obtain a held lock.
	// Default: 100ms
	RetryInterval time.Duration

	// MaxRetries bounds the attempts to obtain a held lock.
	// Default: 50
	MaxRetries int

	// KeyPrefix namespaces lock keys.
	// Default: "lock:"
	KeyPrefix string
}

// DefaultConfig returns the lock timing used by the propman services.
func DefaultConfig() Config {
	return Config{
		TTL:           30 * time.Second,
		RetryInterval: 100 * time.Millisecond,
		MaxRetries:    50,
		KeyPrefix:     "lock:",
	}
}

func (c *Config) validate() {
	d := DefaultConfig()
	if c.TTL <= 0 {
		c.TTL = d.TTL
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = d.RetryInterval
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = d.MaxRetries
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = d.KeyPrefix
	}
}

// Redis is a Locker backed by Redis.
type Redis struct {
	client *redislock.Client
	config Config
}

// NewRedis creates a Redis locker over an existing client.
func NewRedis(client redis.UniversalClient, config Config) *Redis {
	config.validate()
	return &Redis{client: redislock.New(client), config: config}
}

// Dial connects to Redis at addr and verifies the connection.
func Dial(ctx context.Context, addr string, config Config) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return NewRedis(rdb, config), nil
}

// Lock obtains the lock for key, retrying while it is held elsewhere.
func (r *Redis) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	l, err := r.client.Obtain(ctx, r.config.KeyPrefix+key, r.config.TTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(r.config.RetryInterval), r.config.MaxRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ErrNotObtained, key)
	}
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		err := l.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			// expired before release; someone else may hold it now
			return nil
		}
		return err
	}, nil
}
