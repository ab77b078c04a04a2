package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rumahkita/penjualan-pricing/internal/metrics"
	"github.com/rumahkita/penjualan-pricing/internal/models"
)

// CachedCatalogRepository читает справочник через кэш.
// Ошибки кэша не ломают чтение: запрос уходит в источник.
type CachedCatalogRepository struct {
	source CatalogRepository
	cache  CacheRepository
	ttl    time.Duration
}

func NewCachedCatalogRepository(source CatalogRepository, cache CacheRepository, ttl time.Duration) *CachedCatalogRepository {
	return &CachedCatalogRepository{source: source, cache: cache, ttl: ttl}
}

func readThrough[T any](ctx context.Context, c *CachedCatalogRepository, entity, key string, load func() (T, error)) (T, error) {
	if raw, ok := c.cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			metrics.CatalogCache.WithLabelValues(entity, "hit").Inc()
			return v, nil
		}
		slog.Warn("cache entry rusak, dibaca ulang", "key", key)
	}
	metrics.CatalogCache.WithLabelValues(entity, "miss").Inc()

	v, err := load()
	if err != nil {
		return v, err
	}
	if raw, err := json.Marshal(v); err == nil {
		if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
			slog.Warn("gagal menyimpan cache", "key", key, "error", err)
		}
	}
	return v, nil
}

func (c *CachedCatalogRepository) GetUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	return readThrough(ctx, c, "tipe", fmt.Sprintf("catalog:tipe:%d", id), func() (*models.UnitType, error) {
		return c.source.GetUnitType(ctx, id)
	})
}

func (c *CachedCatalogRepository) ListUnitTypes(ctx context.Context, projectID int64) ([]models.UnitType, error) {
	return readThrough(ctx, c, "tipe_list", fmt.Sprintf("catalog:projeks:%d:tipe", projectID), func() ([]models.UnitType, error) {
		return c.source.ListUnitTypes(ctx, projectID)
	})
}

func (c *CachedCatalogRepository) GetScheme(ctx context.Context, id int64) (*models.PaymentScheme, error) {
	return readThrough(ctx, c, "skema", fmt.Sprintf("catalog:skema:%d", id), func() (*models.PaymentScheme, error) {
		return c.source.GetScheme(ctx, id)
	})
}

func (c *CachedCatalogRepository) ListSchemes(ctx context.Context) ([]models.PaymentScheme, error) {
	return readThrough(ctx, c, "skema_list", "catalog:skema", func() ([]models.PaymentScheme, error) {
		return c.source.ListSchemes(ctx)
	})
}
