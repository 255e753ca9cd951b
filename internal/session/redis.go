package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
)

// redisStore shares carts across server instances. Redis handles expiry via
// the TTL set on every write.
type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{rdb: rdb, ttl: ttl}, nil
}

func (s *redisStore) Get(sessionID string) (*cart.Cart, error) {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart session: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart session: %w", err)
	}

	return &c, nil
}

func (s *redisStore) Put(sessionID string, c *cart.Cart) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}

	return s.rdb.Set(ctx, "cart:"+sessionID, jsonData, s.ttl).Err()
}

func (s *redisStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.rdb.Del(ctx, "cart:"+sessionID).Err()
}
