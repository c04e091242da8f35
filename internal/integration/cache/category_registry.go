// Package cache implements Redis-backed read-through caches.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-segmentation/backend/internal/application/adapter"
)

const categoryKeyPrefix = "registry:category:"

// categoryRegistry is a read-through cache over the category repository.
// Both positive and negative lookups are cached with a short TTL, so a
// deactivated category stops validating new segments within one TTL window.
type categoryRegistry struct {
	client *redis.Client
	repo   adapter.CategoryRepository
	ttl    time.Duration
}

// NewCategoryRegistry creates a cached category registry backed by Redis.
func NewCategoryRegistry(client *redis.Client, repo adapter.CategoryRepository, ttl time.Duration) adapter.CategoryRegistry {
	return &categoryRegistry{
		client: client,
		repo:   repo,
		ttl:    ttl,
	}
}

// IsValidCategory reports whether an active category with the given name
// exists, compared case-insensitively. Cache failures fall through to the
// repository; the cache is an optimization, not a dependency.
func (r *categoryRegistry) IsValidCategory(ctx context.Context, name string) (bool, error) {
	key := categoryKeyPrefix + strings.ToLower(strings.TrimSpace(name))

	cached, err := r.client.Get(ctx, key).Result()
	if err == nil {
		return cached == "1", nil
	}
	if err != redis.Nil {
		slog.Warn("Category cache read failed, falling back to repository", "error", err)
	}

	exists, err := r.repo.ExistsActiveByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to look up category %q: %w", name, err)
	}

	value := "0"
	if exists {
		value = "1"
	}
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		slog.Warn("Category cache write failed", "error", err)
	}

	return exists, nil
}
