package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto_backend/internal/feature/symbollist/usecase"
)

// mockSymbolLister はSymbolListerインターフェースのモック実装です。
type mockSymbolLister struct {
	ListSymbolsFunc func(ctx context.Context) ([]string, error)
}

// ListSymbols はモックのListSymbols関数を呼び出します。
func (m *mockSymbolLister) ListSymbols(ctx context.Context) ([]string, error) {
	if m.ListSymbolsFunc != nil {
		return m.ListSymbolsFunc(ctx)
	}
	return nil, nil
}

// TestNewSymbolUsecase はNewSymbolUsecaseコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolLister{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

// TestSymbolUsecase_ListExchangeSymbols はListExchangeSymbolsメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestSymbolUsecase_ListExchangeSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mockListSymbols func(ctx context.Context) ([]string, error)
		expectedSymbols []string
		wantErr         bool
	}{
		{
			name: "success: returns all symbols unfiltered",
			mockListSymbols: func(ctx context.Context) ([]string, error) {
				return []string{"BTCUSDT", "ETHBTC", "ETHUSDT"}, nil
			},
			expectedSymbols: []string{"BTCUSDT", "ETHBTC", "ETHUSDT"},
		},
		{
			name: "success: returns empty list",
			mockListSymbols: func(ctx context.Context) ([]string, error) {
				return []string{}, nil
			},
			expectedSymbols: []string{},
		},
		{
			name: "failure: plain lister error is reported as upstream unavailable",
			mockListSymbols: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			wantErr: true,
		},
		{
			name: "failure: already wrapped upstream error is passed through",
			mockListSymbols: func(ctx context.Context) ([]string, error) {
				return nil, usecase.ErrUpstreamUnavailable
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolLister{ListSymbolsFunc: tt.mockListSymbols})

			symbols, err := uc.ListExchangeSymbols(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, usecase.ErrUpstreamUnavailable)
				assert.Nil(t, symbols)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSymbols, symbols)
			}
		})
	}
}

// TestSymbolUsecase_ListExchangeSymbols_KeepsCause は元のエラーメッセージが保持されることを検証します。
func TestSymbolUsecase_ListExchangeSymbols_KeepsCause(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolLister{
		ListSymbolsFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("binance http 503")
		},
	})

	_, err := uc.ListExchangeSymbols(context.Background())

	assert.ErrorIs(t, err, usecase.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "binance http 503")
}
