package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newWireProduct(id int, title string) Product {
	return Product{
		ID:          ptr(id),
		Title:       ptr(title),
		Price:       decimal.NewNullDecimal(decimal.RequireFromString("19.99")),
		SalePrice:   decimal.NewNullDecimal(decimal.RequireFromString("14.99")),
		Description: ptr("desc"),
		Category:    ptr("shoes"),
		ImageOne:    ptr("one.jpg"),
		ImageTwo:    ptr("two.jpg"),
		ImageThree:  ptr("three.jpg"),
		Rate:        ptr(4.5),
		Count:       ptr(12),
		SaleState:   ptr(true),
	}
}

func TestProduct_ToUI(t *testing.T) {
	p := newWireProduct(1, "Sneaker")

	ui := p.ToUI(NewIDSet(1))

	assert.Equal(t, 1, ui.ID)
	assert.Equal(t, "Sneaker", ui.Title)
	assert.True(t, decimal.RequireFromString("19.99").Equal(ui.Price))
	assert.True(t, decimal.RequireFromString("14.99").Equal(ui.SalePrice))
	assert.Equal(t, "desc", ui.Description)
	assert.Equal(t, "shoes", ui.Category)
	assert.Equal(t, "one.jpg", ui.ImageOne)
	assert.Equal(t, "two.jpg", ui.ImageTwo)
	assert.Equal(t, "three.jpg", ui.ImageThree)
	assert.Equal(t, 4.5, ui.Rate)
	assert.Equal(t, 12, ui.Count)
	assert.True(t, ui.SaleState)
	assert.True(t, ui.IsFavorite)
}

func TestProduct_ToUI_Defaults(t *testing.T) {
	ui := Product{}.ToUI(NewIDSet(0))

	assert.Equal(t, ProductUI{Price: decimal.Zero, SalePrice: decimal.Zero}, ui)
	assert.False(t, ui.IsFavorite, "a product without id is never a favorite")
}

func TestProduct_ToUI_FavoriteMembership(t *testing.T) {
	tests := []struct {
		name      string
		favorites IDSet
		want      bool
	}{
		{name: "nil set", favorites: nil, want: false},
		{name: "empty set", favorites: NewIDSet(), want: false},
		{name: "other ids", favorites: NewIDSet(2, 3), want: false},
		{name: "member", favorites: NewIDSet(3, 7), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newWireProduct(7, "Hat").ToUI(tt.favorites)
			assert.Equal(t, tt.want, ui.IsFavorite)
		})
	}
}

func TestMapProducts(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		out := MapProducts(nil, NewIDSet(1))
		require.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("keeps order and length", func(t *testing.T) {
		in := []Product{newWireProduct(1, "a"), newWireProduct(2, "b"), {Title: ptr("no id")}}
		out := MapProducts(in, NewIDSet(2))

		require.Len(t, out, 3)
		assert.Equal(t, "a", out[0].Title)
		assert.False(t, out[0].IsFavorite)
		assert.True(t, out[1].IsFavorite)
		assert.False(t, out[2].IsFavorite)
	})

	t.Run("idempotent", func(t *testing.T) {
		in := []Product{newWireProduct(1, "a"), newWireProduct(5, "b")}
		favs := NewIDSet(5)
		assert.Equal(t, MapProducts(in, favs), MapProducts(in, favs))
	})
}

func TestFavoriteRoundTrip(t *testing.T) {
	ui := newWireProduct(9, "Bag").ToUI(nil)
	require.False(t, ui.IsFavorite)

	back := ui.ToFavorite().ToUI()

	assert.True(t, back.IsFavorite)
	back.IsFavorite = false
	assert.Equal(t, ui, back)
}

func TestMapFavorites(t *testing.T) {
	out := MapFavorites([]Favorite{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})

	require.Len(t, out, 2)
	for _, p := range out {
		assert.True(t, p.IsFavorite)
	}
	assert.NotNil(t, MapFavorites(nil))
}
