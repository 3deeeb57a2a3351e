package backup

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/storage/memory"
)

type failingSink struct{ after int }

func (s *failingSink) Add(context.Context, product.Favorite) error {
	if s.after == 0 {
		return errors.New("disk full")
	}
	s.after--
	return nil
}

var errWrite = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func gzipped(t *testing.T, lines string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	_, err := zw.Write([]byte(lines))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := memory.NewFavoriteStore()
	want := []product.Favorite{
		{
			ID:          7,
			Title:       "Sneaker \"Pro\"",
			Price:       decimal.RequireFromString("19.99"),
			SalePrice:   decimal.RequireFromString("14.5"),
			Description: "line one\nline two",
			Category:    "shoes",
			ImageOne:    "https://cdn.example.com/1.jpg",
			Rate:        4.5,
			Count:       12,
			SaleState:   true,
		},
		{ID: 3, Title: "Hat", Price: decimal.Zero, SalePrice: decimal.Zero},
	}
	for _, f := range want {
		require.NoError(t, src.Add(ctx, f))
	}

	var archive bytes.Buffer
	n, err := Export(ctx, src, &archive)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := memory.NewFavoriteStore()
	n, err = Import(ctx, &archive, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := dst.Products(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, want[i].Price.Equal(got[i].Price))
		assert.True(t, want[i].SalePrice.Equal(got[i].SalePrice))
		assert.Equal(t, want[i].Rate, got[i].Rate)
		assert.Equal(t, want[i].Count, got[i].Count)
		assert.Equal(t, want[i].SaleState, got[i].SaleState)
	}
}

func TestExport_Empty(t *testing.T) {
	var archive bytes.Buffer
	n, err := Export(context.Background(), memory.NewFavoriteStore(), &archive)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Import(context.Background(), &archive, memory.NewFavoriteStore())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExport_WriteError(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		favorites []product.Favorite
	}{
		{"Empty", nil},
		{"One", []product.Favorite{{ID: 1, Title: "Hat"}}},
		{"Many", []product.Favorite{{ID: 1, Title: "Hat"}, {ID: 2, Title: "Scarf"}, {ID: 3, Title: "Glove"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := memory.NewFavoriteStore()
			for _, f := range tt.favorites {
				require.NoError(t, src.Add(ctx, f))
			}

			n, err := Export(ctx, src, failingWriter{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errWrite), err.Error())
			assert.Zero(t, n)
		})
	}
}

func TestImport_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not gzip", func(t *testing.T) {
		_, err := Import(ctx, bytes.NewBufferString("plain text"), memory.NewFavoriteStore())
		require.Error(t, err)
	})

	t.Run("malformed line", func(t *testing.T) {
		archive := gzipped(t, "{\"id\":1}\n{\"id\":\n")
		_, err := Import(ctx, archive, memory.NewFavoriteStore())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("missing id", func(t *testing.T) {
		archive := gzipped(t, "{\"title\":\"x\"}\n")
		_, err := Import(ctx, archive, memory.NewFavoriteStore())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing id")
	})

	t.Run("bad price", func(t *testing.T) {
		archive := gzipped(t, "{\"id\":1,\"price\":\"abc\"}\n")
		_, err := Import(ctx, archive, memory.NewFavoriteStore())
		require.Error(t, err)
	})

	t.Run("sink failure", func(t *testing.T) {
		archive := gzipped(t, "{\"id\":1}\n\n{\"id\":2}\n{\"id\":3}\n")
		n, err := Import(ctx, archive, &failingSink{after: 2})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store favorite 3")
		assert.Equal(t, 2, n)
	})
}
