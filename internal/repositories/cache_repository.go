package repositories

import (
	"context"
	"time"
)

// CacheRepository - строковый кэш с TTL
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
