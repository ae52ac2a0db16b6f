package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
)

const platoCacheTTL = 10 * time.Minute

// PlatoCache caches the serialized plato listings, one key per eager flag.
// The eager variant embeds categoria and insumo fields, so writes to those
// entities invalidate the cache the same as plato writes do.
type PlatoCache interface {
	Obtener(ctx context.Context, eager bool) ([]dto.PlatoResponse, bool)
	Guardar(ctx context.Context, eager bool, list []dto.PlatoResponse)
	Invalidar(ctx context.Context)
}

type redisPlatoCache struct{ rdb *redis.Client }

// NewPlatoCache wraps a Redis client as a PlatoCache. A nil client yields a
// nil cache, which the services treat as caching disabled.
func NewPlatoCache(rdb *redis.Client) PlatoCache {
	if rdb == nil {
		return nil
	}
	return &redisPlatoCache{rdb: rdb}
}

func platoCacheKey(eager bool) string {
	if eager {
		return "platos:eager"
	}
	return "platos:flat"
}

func (c *redisPlatoCache) Obtener(ctx context.Context, eager bool) ([]dto.PlatoResponse, bool) {
	raw, err := c.rdb.Get(ctx, platoCacheKey(eager)).Bytes()
	if err != nil {
		return nil, false
	}
	var list []dto.PlatoResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *redisPlatoCache) Guardar(ctx context.Context, eager bool, list []dto.PlatoResponse) {
	if raw, err := json.Marshal(list); err == nil {
		c.rdb.Set(ctx, platoCacheKey(eager), raw, platoCacheTTL)
	}
}

func (c *redisPlatoCache) Invalidar(ctx context.Context) {
	c.rdb.Del(ctx, platoCacheKey(true), platoCacheKey(false))
}
