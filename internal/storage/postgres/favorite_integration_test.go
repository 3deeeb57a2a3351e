//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/shopfront/internal/domain/product"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "shop",
				"POSTGRES_PASSWORD": "shop",
				"POSTGRES_DB":       "shop",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, c)
	require.NoError(t, err)

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://shop:shop@%s:%s/shop?sslmode=disable", host, port.Port())
	pool, err := NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool))
	require.NoError(t, RunMigrations(ctx, pool), "migrations must be idempotent")
	return pool
}

func TestFavoriteStore(t *testing.T) {
	ctx := context.Background()
	s := NewFavoriteStore(newTestPool(t))
	require.NoError(t, s.Ping(ctx))

	ids, err := s.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	fav := product.Favorite{
		ID:          7,
		Title:       "Sneaker",
		Price:       decimal.RequireFromString("19.99"),
		SalePrice:   decimal.RequireFromString("14.50"),
		Description: "d",
		Category:    "shoes",
		ImageOne:    "1.jpg",
		Rate:        4.5,
		Count:       12,
		SaleState:   true,
	}
	require.NoError(t, s.Add(ctx, fav))
	require.NoError(t, s.Add(ctx, product.Favorite{ID: 3, Title: "Hat"}))

	fav.Title = "Sneaker v2"
	require.NoError(t, s.Add(ctx, fav))

	favorites, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2, "one record per id")

	got := favorites[0]
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Sneaker v2", got.Title)
	assert.True(t, fav.Price.Equal(got.Price))
	assert.True(t, fav.SalePrice.Equal(got.SalePrice))
	assert.Equal(t, 12, got.Count)
	assert.True(t, got.SaleState)

	ids, err = s.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.NewIDSet(3, 7), ids)

	require.NoError(t, s.Delete(ctx, 7))
	require.NoError(t, s.Delete(ctx, 7))
	ids, err = s.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.NewIDSet(3), ids)

	require.NoError(t, s.Clear(ctx))
	favorites, err = s.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
