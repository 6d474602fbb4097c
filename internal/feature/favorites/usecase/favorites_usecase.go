// Package usecase implements the business logic for favorite trading pairs.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crypto_backend/internal/feature/favorites/domain"
	"crypto_backend/internal/feature/favorites/domain/entity"
)

// FavoritesStore abstracts the persistence layer for favorite pairs.
// Implementations normalize the symbol themselves and return the errors in the domain package.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FavoritesStore interface {
	// List はすべてのお気に入りを挿入順で返します。
	List(ctx context.Context) ([]entity.FavoritePair, error)
	// Add はシンボルを正規化して新しいお気に入りを保存します。
	Add(ctx context.Context, symbol string) (*entity.FavoritePair, error)
	// Remove はシンボルを正規化して一致するお気に入りを削除します。
	Remove(ctx context.Context, symbol string) error
}

// FavoritesUsecase provides business logic for favorite pair operations.
type FavoritesUsecase struct {
	store FavoritesStore
}

// NewFavoritesUsecase creates a new FavoritesUsecase with the given store.
func NewFavoritesUsecase(s FavoritesStore) *FavoritesUsecase {
	return &FavoritesUsecase{store: s}
}

// ListFavorites returns all favorite pairs.
func (u *FavoritesUsecase) ListFavorites(ctx context.Context) ([]entity.FavoritePair, error) {
	return u.store.List(ctx)
}

// AddFavorite adds symbol to favorites and returns the created record.
func (u *FavoritesUsecase) AddFavorite(ctx context.Context, symbol string) (*entity.FavoritePair, error) {
	return u.store.Add(ctx, symbol)
}

// RemoveFavorite removes symbol from favorites.
func (u *FavoritesUsecase) RemoveFavorite(ctx context.Context, symbol string) error {
	return u.store.Remove(ctx, symbol)
}

// SeedDefaults はストアが空の場合に限り、指定されたシンボルを投入します。
// 投入した件数を返します。既にレコードがある場合は何もしません。
func (u *FavoritesUsecase) SeedDefaults(ctx context.Context, symbols []string) (int, error) {
	existing, err := u.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list favorites: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("favorites already initialized", "count", len(existing))
		return 0, nil
	}

	added := 0
	for _, s := range symbols {
		if _, err := u.store.Add(ctx, s); err != nil {
			// 別プロセスが同時に投入した場合は重複として無視する
			if errors.Is(err, domain.ErrDuplicateSymbol) {
				continue
			}
			return added, fmt.Errorf("seed %q: %w", s, err)
		}
		added++
	}
	slog.Info("default favorite pairs added", "count", added)
	return added, nil
}
