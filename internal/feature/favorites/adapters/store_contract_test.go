package adapters

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto_backend/internal/feature/favorites/domain"
	"crypto_backend/internal/feature/favorites/usecase"
)

// runStoreContract はFavoritesStoreの実装が共通の契約を満たすことを検証します。
// newStore はサブテストごとに独立した空のストアを返す必要があります。
func runStoreContract(t *testing.T, newStore func(t *testing.T) usecase.FavoritesStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("add then list contains exactly one uppercase record", func(t *testing.T) {
		s := newStore(t)

		fp, err := s.Add(ctx, "btcusdt")
		require.NoError(t, err)
		assert.Equal(t, "BTCUSDT", fp.Symbol)
		assert.Equal(t, 0, fp.Order)
		assert.NotZero(t, fp.ID)

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, *fp, list[0])
	})

	t.Run("duplicate add fails and keeps one record", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Add(ctx, "ETHUSDT")
		require.NoError(t, err)

		_, err = s.Add(ctx, "ethusdt")
		assert.ErrorIs(t, err, domain.ErrDuplicateSymbol)

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("empty and blank symbols are rejected", func(t *testing.T) {
		s := newStore(t)

		for _, in := range []string{"", "   "} {
			_, err := s.Add(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
			assert.ErrorIs(t, s.Remove(ctx, in), domain.ErrInvalidSymbol)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("remove missing symbol reports not found and leaves list unchanged", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Add(ctx, "SOLUSDT")
		require.NoError(t, err)
		before, err := s.List(ctx)
		require.NoError(t, err)

		err = s.Remove(ctx, "DOGEUSDT")
		assert.ErrorIs(t, err, domain.ErrSymbolNotFound)

		after, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("case insensitive add and remove", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Add(ctx, "btcusdt")
		require.NoError(t, err)
		require.NoError(t, s.Remove(ctx, "BTCUSDT"))

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("remove deletes only the matching record", func(t *testing.T) {
		s := newStore(t)

		for _, sym := range []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"} {
			_, err := s.Add(ctx, sym)
			require.NoError(t, err)
		}
		require.NoError(t, s.Remove(ctx, "ethusdt"))

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "BTCUSDT", list[0].Symbol)
		assert.Equal(t, "SOLUSDT", list[1].Symbol)
	})

	t.Run("list preserves insertion order with increasing ids", func(t *testing.T) {
		s := newStore(t)

		symbols := []string{"DOGEUSDT", "ADAUSDT", "BNBUSDT"}
		for _, sym := range symbols {
			_, err := s.Add(ctx, sym)
			require.NoError(t, err)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, len(symbols))
		for i, sym := range symbols {
			assert.Equal(t, sym, list[i].Symbol)
			if i > 0 {
				assert.Greater(t, list[i].ID, list[i-1].ID)
			}
		}
	})

	t.Run("concurrent duplicate adds succeed exactly once", func(t *testing.T) {
		s := newStore(t)

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Add(ctx, "xrpusdt")
				if err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, domain.ErrDuplicateSymbol)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
