// Package rediscache cachea el catálogo (razas, países, hobbies) en Redis.
//
// Las entradas de catálogo no se editan ni se borran, así que sólo hace
// falta invalidar el listado de un kind cuando se crea una entrada nueva.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/platform/logger"
)

const (
	keyPrefix  = "dogs:catalog:"
	DefaultTTL = 10 * time.Minute
)

type cachedEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogRepo envuelve un catalog.Repository. Si Redis falla se loguea y se
// va directo al repo interno.
type CatalogRepo struct {
	inner  catalog.Repository
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewCatalogRepo(inner catalog.Repository, client *redis.Client, ttl time.Duration, log logger.Logger) *CatalogRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogRepo{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log.With(map[string]any{"component": "catalog_cache"}),
	}
}

func listKey(kind catalog.Kind) string {
	return keyPrefix + string(kind) + ":all"
}

func entryKey(kind catalog.Kind, id string) string {
	return keyPrefix + string(kind) + ":id:" + id
}

func (r *CatalogRepo) Create(ctx context.Context, e catalog.Entry) error {
	if err := r.inner.Create(ctx, e); err != nil {
		return err
	}
	if err := r.client.Del(ctx, listKey(e.Kind)).Err(); err != nil {
		r.log.Warn("catalog cache invalidation failed", map[string]any{"kind": e.Kind, "err": err})
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, kind catalog.Kind, id string) (catalog.Entry, error) {
	key := entryKey(kind, id)

	var ce cachedEntry
	if r.get(ctx, key, &ce) {
		return fromCached(kind, ce), nil
	}

	e, err := r.inner.GetByID(ctx, kind, id)
	if err != nil {
		return catalog.Entry{}, err
	}
	r.set(ctx, key, toCached(e))
	return e, nil
}

// GetByName no se cachea: sólo lo usa Create para detectar duplicados.
func (r *CatalogRepo) GetByName(ctx context.Context, kind catalog.Kind, name string) (catalog.Entry, error) {
	return r.inner.GetByName(ctx, kind, name)
}

func (r *CatalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	key := listKey(kind)

	var cached []cachedEntry
	if r.get(ctx, key, &cached) {
		out := make([]catalog.Entry, 0, len(cached))
		for _, ce := range cached {
			out = append(out, fromCached(kind, ce))
		}
		return out, nil
	}

	items, err := r.inner.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	toStore := make([]cachedEntry, 0, len(items))
	for _, e := range items {
		toStore = append(toStore, toCached(e))
	}
	r.set(ctx, key, toStore)
	return items, nil
}

func (r *CatalogRepo) get(ctx context.Context, key string, dst any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.log.Warn("catalog cache read failed", map[string]any{"key": key, "err": err})
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Warn("catalog cache entry corrupted", map[string]any{"key": key, "err": err})
		return false
	}
	return true
}

func (r *CatalogRepo) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.log.Error("catalog cache encode failed", map[string]any{"key": key, "err": err})
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.log.Warn("catalog cache write failed", map[string]any{"key": key, "err": err})
	}
}

func toCached(e catalog.Entry) cachedEntry {
	return cachedEntry{ID: e.ID, Name: e.Name, CreatedAt: e.CreatedAt}
}

func fromCached(kind catalog.Kind, ce cachedEntry) catalog.Entry {
	return catalog.Entry{ID: ce.ID, Kind: kind, Name: ce.Name, CreatedAt: ce.CreatedAt}
}

// Ping se usa al arrancar para decidir si vale la pena usar la cache.
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
