package adapters

import (
	"context"
	"sync"

	"crypto_backend/internal/feature/favorites/domain"
	"crypto_backend/internal/feature/favorites/domain/entity"
	"crypto_backend/internal/feature/favorites/usecase"
)

// favoriteMemory is an in-memory FavoritesStore.
// Each instance is isolated, which makes it suitable for tests and local runs without a database.
type favoriteMemory struct {
	mu     sync.RWMutex
	items  []entity.FavoritePair
	nextID uint
}

var _ usecase.FavoritesStore = (*favoriteMemory)(nil)

// NewFavoriteMemory creates an empty in-memory store.
func NewFavoriteMemory() *favoriteMemory {
	return &favoriteMemory{nextID: 1}
}

// List returns a copy of all favorites in insertion order.
func (s *favoriteMemory) List(ctx context.Context) ([]entity.FavoritePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.FavoritePair, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Add stores a new favorite unless the normalized symbol already exists.
func (s *favoriteMemory) Add(ctx context.Context, symbol string) (*entity.FavoritePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(sym) >= 0 {
		return nil, domain.ErrDuplicateSymbol
	}
	fp := entity.FavoritePair{ID: s.nextID, Symbol: sym, Order: 0}
	s.nextID++
	s.items = append(s.items, fp)
	return &fp, nil
}

// Remove deletes the favorite with the normalized symbol.
func (s *favoriteMemory) Remove(ctx context.Context, symbol string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(sym)
	if i < 0 {
		return domain.ErrSymbolNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *favoriteMemory) indexOf(symbol string) int {
	for i, fp := range s.items {
		if fp.Symbol == symbol {
			return i
		}
	}
	return -1
}
