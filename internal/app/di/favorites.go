// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"crypto_backend/internal/feature/favorites/adapters"
	"crypto_backend/internal/feature/favorites/usecase"
	"crypto_backend/internal/platform/cache"
)

// NewFavoritesStore creates a FavoritesStore backed by the database.
// If Redis is available, the list is cached in front of it.
func NewFavoritesStore(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.FavoritesStore {
	repo := adapters.NewFavoriteRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingFavoriteStore(rdb, ttl, repo, "favorites")
}
