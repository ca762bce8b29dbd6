// Package dedupe remembers inbound message ids, so redelivered emails are processed once.
package dedupe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const keyPrefix = "frame-order-parser:message:"

// Redis claims message ids with SET NX, claims expire after ttl.
type Redis struct {
	pool *redis.Pool
	ttl  time.Duration
}

// NewPool returns new redis connection pool.
func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr)
		},
	}
}

// NewRedis returns new Redis.
func NewRedis(pool *redis.Pool, ttl time.Duration) *Redis {
	return &Redis{
		pool: pool,
		ttl:  ttl,
	}
}

// Claim claims message id. Returns false if message was already claimed and claim did not expire yet.
func (r *Redis) Claim(ctx context.Context, messageID string) (bool, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("can't get redis connection: %w", err)
	}
	defer conn.Close()

	_, err = redis.String(redis.DoContext(conn, ctx, "SET", keyPrefix+messageID, time.Now().UTC().Unix(), "NX", "EX", int(r.ttl.Seconds())))
	if errors.Is(err, redis.ErrNil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't claim message %q: %w", messageID, err)
	}

	return true, nil
}

// Release removes claim of message id, so the message can be processed again.
func (r *Redis) Release(ctx context.Context, messageID string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("can't get redis connection: %w", err)
	}
	defer conn.Close()

	if _, err := redis.DoContext(conn, ctx, "DEL", keyPrefix+messageID); err != nil {
		return fmt.Errorf("can't release message %q: %w", messageID, err)
	}

	return nil
}
