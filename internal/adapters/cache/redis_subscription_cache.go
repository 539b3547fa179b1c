package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const subscriptionKeyPrefix = "storefront:subscriptions:"

// Connect initializes a Redis client from a redis:// URL or a host:port address.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisSubscriptionCache stores subscription lists as JSON with a TTL.
type RedisSubscriptionCache struct {
	client redis.Cmdable
}

// NewRedisSubscriptionCache creates the Redis backed cache.
func NewRedisSubscriptionCache(client redis.Cmdable) *RedisSubscriptionCache {
	return &RedisSubscriptionCache{client: client}
}

var _ portsrepo.SubscriptionCache = (*RedisSubscriptionCache)(nil)

func subscriptionKey(customerID string) string {
	return subscriptionKeyPrefix + customerID
}

func (c *RedisSubscriptionCache) Get(ctx context.Context, customerID string) ([]domain.Subscription, bool, error) {
	raw, err := c.client.Get(ctx, subscriptionKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached subscriptions: %w", err)
	}
	var subs []domain.Subscription
	if err := json.Unmarshal(raw, &subs); err != nil {
		// A payload written by an incompatible version is treated as a miss.
		_ = c.client.Del(ctx, subscriptionKey(customerID)).Err()
		return nil, false, nil
	}
	return subs, true, nil
}

func (c *RedisSubscriptionCache) Set(ctx context.Context, customerID string, subscriptions []domain.Subscription, ttl time.Duration) error {
	if subscriptions == nil {
		subscriptions = []domain.Subscription{}
	}
	payload, err := json.Marshal(subscriptions)
	if err != nil {
		return fmt.Errorf("failed to encode subscriptions: %w", err)
	}
	if err := c.client.Set(ctx, subscriptionKey(customerID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache subscriptions: %w", err)
	}
	return nil
}

func (c *RedisSubscriptionCache) Invalidate(ctx context.Context, customerID string) error {
	if err := c.client.Del(ctx, subscriptionKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached subscriptions: %w", err)
	}
	return nil
}
