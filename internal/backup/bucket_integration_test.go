//go:build integration

package backup

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/storage/memory"
)

func TestBucket_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			Cmd:          []string{"server", "/data"},
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     "shopfront",
				"MINIO_ROOT_PASSWORD": "shopfront-secret",
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, c)
	require.NoError(t, err)

	endpoint, err := c.PortEndpoint(ctx, "9000/tcp", "")
	require.NoError(t, err)

	bucket, err := NewBucket(ctx, BucketConfig{
		Endpoint:  endpoint,
		AccessKey: "shopfront",
		SecretKey: "shopfront-secret",
		Bucket:    "favorites",
	})
	require.NoError(t, err)

	src := memory.NewFavoriteStore()
	require.NoError(t, src.Add(ctx, product.Favorite{ID: 1, Title: "Lamp", Price: decimal.RequireFromString("5.25")}))
	require.NoError(t, src.Add(ctx, product.Favorite{ID: 2, Title: "Desk"}))

	n, err := bucket.ExportTo(ctx, src, "backups/favorites.jsonl.gz")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := memory.NewFavoriteStore()
	n, err = bucket.ImportFrom(ctx, "backups/favorites.jsonl.gz", dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ids, err := dst.ProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, product.NewIDSet(1, 2), ids)
}
