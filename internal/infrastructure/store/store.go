package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
)

const catalogKey = "spareparts:catalog"

// CatalogCacheStore caches the spare-part catalog listing in Redis. The
// catalog is read far more often than it changes, so writes just invalidate.
type CatalogCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewCatalogCacheStore(rdb *redis.Client) *CatalogCacheStore {
	return &CatalogCacheStore{
		rdb:     rdb,
		listTTL: 30 * time.Minute,
	}
}

func (c *CatalogCacheStore) GetParts(ctx context.Context) ([]entity.SparePart, bool, error) {
	b, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var parts []entity.SparePart
	if err := json.Unmarshal(b, &parts); err != nil {
		return nil, false, nil
	}
	return parts, true, nil
}

func (c *CatalogCacheStore) SetParts(ctx context.Context, parts []entity.SparePart) error {
	data, err := json.Marshal(parts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogKey, data, c.listTTL).Err()
}

func (c *CatalogCacheStore) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}
