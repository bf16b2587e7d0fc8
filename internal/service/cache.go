package service

import (
	"context"
	"time"

	"feedbackpulse/internal/cache"
)

// ProjectKeyCachePrefix namespaces cached project key lookups.
const ProjectKeyCachePrefix = "project_key:"

// Cache is the part of the redis cache the services rely on.
// *cache.Client satisfies it, including when nil.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// orNoCache swaps a nil Cache for the always-empty nil client.
func orNoCache(c Cache) Cache {
	if c == nil {
		return (*cache.Client)(nil)
	}
	return c
}

func projectKeyCacheKey(key string) string {
	return ProjectKeyCachePrefix + key
}
