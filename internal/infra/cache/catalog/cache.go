// Package catalog кэширует ответы сервиса каталога в Redis (read-through).
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

const keyPrefix = "catalog:products:"

// Результаты обращения к кэшу для метрики
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// CachedClient read-through кэш поверх клиента каталога.
// Ошибки Redis не ломают чтение: запрос уходит в источник.
type CachedClient struct {
	source  Source
	client  redis.Cmdable
	ttl     time.Duration
	metrics Metrics
	log     Logger
}

func NewCachedClient(source Source, client redis.Cmdable, ttl time.Duration, metrics Metrics, log Logger) *CachedClient {
	return &CachedClient{
		source:  source,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// GetProducts возвращает каталог бизнеса из кэша или из источника
func (c *CachedClient) GetProducts(ctx context.Context, businessID string) ([]domain.Product, error) {
	key := cacheKey(businessID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var products []domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			c.metrics.IncCatalogCache(ResultHit)
			return products, nil
		}
		c.log.Warn("Catalog cache: corrupted entry for business_id=%s, refetching", businessID)
		c.metrics.IncCatalogCache(ResultError)
	case errors.Is(err, redis.Nil):
		c.metrics.IncCatalogCache(ResultMiss)
	default:
		c.log.Warn("Catalog cache: get failed for business_id=%s: %v", businessID, err)
		c.metrics.IncCatalogCache(ResultError)
	}

	products, err := c.source.GetProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(products)
	if err != nil {
		c.log.Error("Catalog cache: failed to encode products for business_id=%s: %v", businessID, err)
		return products, nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.log.Warn("Catalog cache: set failed for business_id=%s: %v", businessID, err)
	}

	return products, nil
}

// Invalidate удаляет закэшированный каталог бизнеса
func (c *CachedClient) Invalidate(ctx context.Context, businessID string) error {
	return c.client.Del(ctx, cacheKey(businessID)).Err()
}

func cacheKey(businessID string) string {
	return keyPrefix + businessID
}
