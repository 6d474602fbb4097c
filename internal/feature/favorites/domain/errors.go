// Package domain defines domain-level errors and rules for the favorites feature.
package domain

import "errors"

// Domain errors for favorite pair operations.
// The HTTP layer maps each of these to a status code.
var (
	// ErrInvalidSymbol indicates that the symbol is missing, blank, or longer than MaxSymbolLength.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrDuplicateSymbol indicates that the symbol is already in favorites.
	ErrDuplicateSymbol = errors.New("symbol already in favorites")

	// ErrSymbolNotFound indicates that the symbol is not in favorites.
	ErrSymbolNotFound = errors.New("symbol not found in favorites")
)
