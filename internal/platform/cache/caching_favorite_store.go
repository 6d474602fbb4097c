// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"crypto_backend/internal/feature/favorites/domain/entity"
	"crypto_backend/internal/feature/favorites/usecase"
)

const (
	// DefaultTTL is used when a non-positive ttl is given.
	DefaultTTL       = 5 * time.Minute
	defaultNamespace = "favorites"
)

// CachingFavoriteStore decorates a FavoritesStore with a Redis read-through
// cache for List.
//
// Cached lists are keyed by a write generation. Every successful write bumps the
// generation, so a List that read the store before the write can only populate a
// key that no later List will look up.
type CachingFavoriteStore struct {
	inner     usecase.FavoritesStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.FavoritesStore = (*CachingFavoriteStore)(nil)

// NewCachingFavoriteStore decorates a FavoritesStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "favorites".
// A nil rdb disables caching and every call goes straight to inner.
func NewCachingFavoriteStore(rdb *redis.Client, ttl time.Duration, inner usecase.FavoritesStore, namespace string) *CachingFavoriteStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingFavoriteStore{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns the favorites, checking the cache first then falling back to the store.
func (c *CachingFavoriteStore) List(ctx context.Context) ([]entity.FavoritePair, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	// 世代はストアを読む前に取得する
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("favorites cache generation read failed", "error", err)
		return c.inner.List(ctx)
	}
	key := c.listKey(gen)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.FavoritePair
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除してDBから取り直す
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("favorites cache set failed", "key", key, "error", err)
		}
	}
	return out, nil
}

// Add stores the symbol and invalidates the cached list on success.
func (c *CachingFavoriteStore) Add(ctx context.Context, symbol string) (*entity.FavoritePair, error) {
	fp, err := c.inner.Add(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return fp, nil
}

// Remove deletes the symbol and invalidates the cached list on success.
func (c *CachingFavoriteStore) Remove(ctx context.Context, symbol string) error {
	if err := c.inner.Remove(ctx, symbol); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate bumps the write generation. Lists cached under older generations
// are never read again and expire with their TTL.
func (c *CachingFavoriteStore) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	key := c.genKey()
	// 失敗しても書き込み結果には影響させない。古い一覧はTTLで失効する
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		slog.Warn("favorites cache invalidation failed", "key", key, "error", err)
	}
}

// genKey is the counter bumped on every successful write.
func (c *CachingFavoriteStore) genKey() string {
	return safe(c.namespace) + ":gen"
}

// listKey generates the cache key for the favorites list at a generation.
func (c *CachingFavoriteStore) listKey(gen int64) string {
	return fmt.Sprintf("%s:list:%d", safe(c.namespace), gen)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
