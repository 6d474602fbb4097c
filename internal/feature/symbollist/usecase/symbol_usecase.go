// Package usecase implements the business logic for exchange symbol listing.
package usecase

import (
	"context"
	"errors"
	"fmt"
)

// SymbolLister abstracts the upstream exchange that provides tradable symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolLister interface {
	ListSymbols(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	lister SymbolLister
}

// NewSymbolUsecase creates a new SymbolUsecase with the given lister.
func NewSymbolUsecase(l SymbolLister) *SymbolUsecase {
	return &SymbolUsecase{lister: l}
}

// ListExchangeSymbols returns every symbol name the exchange reports, unfiltered.
// Any failure is reported as ErrUpstreamUnavailable; it is never turned into an empty list.
func (u *SymbolUsecase) ListExchangeSymbols(ctx context.Context) ([]string, error) {
	symbols, err := u.lister.ListSymbols(ctx)
	if err != nil {
		if errors.Is(err, ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return symbols, nil
}
