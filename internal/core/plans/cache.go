package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
)

// Cache stores normalized plans for the revalidation window.
// Implementations only need last-writer-wins semantics.
type Cache interface {
	Get(ctx context.Context, key string) ([]kb.PricingPlan, bool, error)
	Set(ctx context.Context, key string, plans []kb.PricingPlan, ttl time.Duration) error
	Name() string
}

type memoryEntry struct {
	storedAt time.Time
	ttl      time.Duration
	plans    []kb.PricingPlan
}

// MemoryCache is a process-local cache keyed by request URL
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Name() string {
	return "memory"
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]kb.PricingPlan, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.storedAt) >= entry.ttl {
		return nil, false, nil
	}
	return clonePlans(entry.plans), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, plans []kb.PricingPlan, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{storedAt: c.now(), ttl: ttl, plans: clonePlans(plans)}
	c.mu.Unlock()
	return nil
}

// RedisCache shares plans between replicas; expiry is left to Redis
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client, prefix: "assistant:plans:"}
}

func (c *RedisCache) Name() string {
	return "redis"
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]kb.PricingPlan, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var plans []kb.PricingPlan
	if err := json.Unmarshal(raw, &plans); err != nil {
		return nil, false, fmt.Errorf("decode cached plans: %w", err)
	}
	return plans, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, plans []kb.PricingPlan, ttl time.Duration) error {
	payload, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func clonePlans(src []kb.PricingPlan) []kb.PricingPlan {
	out := make([]kb.PricingPlan, len(src))
	for i, p := range src {
		out[i] = kb.PricingPlan{
			Name:     p.Name,
			Price:    p.Price,
			Features: append([]string(nil), p.Features...),
		}
	}
	return out
}
