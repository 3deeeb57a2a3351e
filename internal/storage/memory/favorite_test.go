package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shopfront/internal/domain/product"
)

func TestFavoriteStore(t *testing.T) {
	ctx := context.Background()
	s := NewFavoriteStore()

	ids, err := s.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.Add(ctx, product.Favorite{ID: 2, Title: "b"}))
	require.NoError(t, s.Add(ctx, product.Favorite{ID: 1, Title: "a"}))
	require.NoError(t, s.Add(ctx, product.Favorite{ID: 2, Title: "b2"}))

	favorites, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2, "one record per id")
	assert.Equal(t, 2, favorites[0].ID)
	assert.Equal(t, "b2", favorites[0].Title)
	assert.Equal(t, 1, favorites[1].ID)

	ids, err = s.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.NewIDSet(1, 2), ids)

	require.NoError(t, s.Delete(ctx, 2))
	require.NoError(t, s.Delete(ctx, 42))

	favorites, err = s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, 1, favorites[0].ID)

	require.NoError(t, s.Clear(ctx))
	favorites, err = s.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteStore_SnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	s := NewFavoriteStore()
	require.NoError(t, s.Add(ctx, product.Favorite{ID: 1}))

	ids, err := s.ProductIDs(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, product.Favorite{ID: 2}))

	assert.False(t, ids.Contains(2))
}

func TestFavoriteStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewFavoriteStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			_ = s.Add(ctx, product.Favorite{ID: i % 10})
			_, _ = s.ProductIDs(ctx)
		})
	}
	wg.Wait()

	favorites, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 10)
}
