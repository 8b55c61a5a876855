// Package cache holds collection tree caches for the catalog service.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/commerce"
)

const redisKeyPrefix = "storefront:collections:"

type entry struct {
	collections []commerce.Collection
	expiresAt   time.Time
}

// Memory is a process-local cache. Suitable for single-instance deployments
// and tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, locale string) ([]commerce.Collection, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[locale]
	m.mu.RUnlock()
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.collections, true, nil
}

func (m *Memory) Set(_ context.Context, locale string, collections []commerce.Collection, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[locale] = entry{collections: collections, expiresAt: m.now().Add(ttl)}
	return nil
}

// Redis shares the cache between storefront instances.
type Redis struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, locale string) ([]commerce.Collection, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+locale).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collections: %w", err)
	}
	var collections []commerce.Collection
	if err := json.Unmarshal(raw, &collections); err != nil {
		return nil, false, fmt.Errorf("decode collections: %w", err)
	}
	return collections, true, nil
}

func (r *Redis) Set(ctx context.Context, locale string, collections []commerce.Collection, ttl time.Duration) error {
	raw, err := json.Marshal(collections)
	if err != nil {
		return fmt.Errorf("encode collections: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+locale, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write collections: %w", err)
	}
	return nil
}
