package repository

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
	"github.com/xenking/shopfront/internal/storage/memory"
)

// --- Mock implementations ---

type mockRemote struct {
	products       *product.ProductsResponse
	productsErr    error
	detail         *product.ProductDetailResponse
	detailErr      error
	sale           *product.ProductsResponse
	saleErr        error
	search         func(query string) (*product.ProductsResponse, error)
	byCategory     func(category string) (*product.ProductsResponse, error)
	categories     *product.CategoriesResponse
	categoriesErr  error
	cartAdd        *product.CartResponse
	cartAddErr     error
	cartDelete     *product.BaseResponse
	cartProducts   *product.ProductsResponse
	cartClear      *product.BaseResponse
	panicOnProduct bool

	lastAdd    cart.AddRequest
	lastDelete cart.DeleteRequest
	lastClear  cart.ClearRequest
	lastUserID string
}

func (m *mockRemote) GetProducts(_ context.Context) (*product.ProductsResponse, error) {
	if m.panicOnProduct {
		panic("boom")
	}
	return m.products, m.productsErr
}

func (m *mockRemote) GetProductDetail(_ context.Context, _ int) (*product.ProductDetailResponse, error) {
	return m.detail, m.detailErr
}

func (m *mockRemote) GetSaleProducts(_ context.Context) (*product.ProductsResponse, error) {
	return m.sale, m.saleErr
}

func (m *mockRemote) SearchProduct(_ context.Context, query string) (*product.ProductsResponse, error) {
	return m.search(query)
}

func (m *mockRemote) GetProductsByCategory(_ context.Context, category string) (*product.ProductsResponse, error) {
	return m.byCategory(category)
}

func (m *mockRemote) GetCategories(_ context.Context) (*product.CategoriesResponse, error) {
	return m.categories, m.categoriesErr
}

func (m *mockRemote) AddToCart(_ context.Context, req cart.AddRequest) (*product.CartResponse, error) {
	m.lastAdd = req
	return m.cartAdd, m.cartAddErr
}

func (m *mockRemote) DeleteFromCart(_ context.Context, req cart.DeleteRequest) (*product.BaseResponse, error) {
	m.lastDelete = req
	return m.cartDelete, nil
}

func (m *mockRemote) GetCartProducts(_ context.Context, userID string) (*product.ProductsResponse, error) {
	m.lastUserID = userID
	return m.cartProducts, nil
}

func (m *mockRemote) ClearCart(_ context.Context, req cart.ClearRequest) (*product.BaseResponse, error) {
	m.lastClear = req
	return m.cartClear, nil
}

type failingStore struct {
	product.FavoriteStore
	err error
}

func (s *failingStore) ProductIDs(_ context.Context) (product.IDSet, error) { return nil, s.err }

func (s *failingStore) Products(_ context.Context) ([]product.Favorite, error) { return nil, s.err }

func (s *failingStore) Add(_ context.Context, _ product.Favorite) error { return s.err }

func (s *failingStore) Delete(_ context.Context, _ int) error { return s.err }

func (s *failingStore) Clear(_ context.Context) error { return s.err }

// --- Helpers ---

func ptr[T any](v T) *T { return &v }

func wireProduct(id int, title string) product.Product {
	return product.Product{
		ID:    ptr(id),
		Title: ptr(title),
		Price: decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
	}
}

func okProducts(products ...product.Product) *product.ProductsResponse {
	return &product.ProductsResponse{
		BaseResponse: product.BaseResponse{Status: product.StatusOK},
		Products:     products,
	}
}

func newRepo(t *testing.T, remote Remote, store product.FavoriteStore) *Repository {
	t.Helper()
	r, err := New(remote, store, Options{})
	require.NoError(t, err)
	return r
}

func seeded(t *testing.T, ids ...int) *memory.FavoriteStore {
	t.Helper()
	s := memory.NewFavoriteStore()
	for _, id := range ids {
		require.NoError(t, s.Add(context.Background(), product.Favorite{ID: id, Title: "fav"}))
	}
	return s
}

// --- Tests ---

func TestGetProducts_MarksFavorites(t *testing.T) {
	remote := &mockRemote{products: okProducts(
		wireProduct(1, "A"),
		wireProduct(2, "B"),
		wireProduct(3, "C"),
	)}
	r := newRepo(t, remote, seeded(t, 2))

	res := r.GetProducts(context.Background())
	require.Equal(t, result.KindSuccess, res.Kind())

	got, ok := res.Data()
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, []bool{false, true, false}, []bool{got[0].IsFavorite, got[1].IsFavorite, got[2].IsFavorite})
	assert.Equal(t, "B", got[1].Title)
}

func TestGetProducts_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		remote   *mockRemote
		wantKind result.Kind
		wantMsg  string
	}{
		{
			name: "negative status",
			remote: &mockRemote{products: &product.ProductsResponse{
				BaseResponse: product.BaseResponse{Status: 400, Message: "bad request"},
			}},
			wantKind: result.KindFail,
			wantMsg:  "bad request",
		},
		{
			name: "negative status without message",
			remote: &mockRemote{products: &product.ProductsResponse{
				BaseResponse: product.BaseResponse{Status: 500},
			}},
			wantKind: result.KindFail,
			wantMsg:  "",
		},
		{
			name:     "missing response",
			remote:   &mockRemote{},
			wantKind: result.KindFail,
			wantMsg:  "",
		},
		{
			name:     "transport error",
			remote:   &mockRemote{productsErr: errors.New("dial tcp: connection refused")},
			wantKind: result.KindError,
			wantMsg:  "dial tcp: connection refused",
		},
		{
			name:     "empty error message",
			remote:   &mockRemote{productsErr: errors.New("")},
			wantKind: result.KindError,
			wantMsg:  DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRepo(t, tt.remote, memory.NewFavoriteStore())

			res := r.GetProducts(context.Background())
			assert.Equal(t, tt.wantKind, res.Kind())
			assert.Equal(t, tt.wantMsg, res.Message())
		})
	}
}

func TestGetProducts_EmptyListIsSuccess(t *testing.T) {
	r := newRepo(t, &mockRemote{products: okProducts()}, memory.NewFavoriteStore())

	res := r.GetProducts(context.Background())
	got, ok := res.Data()
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetProducts_PanicBecomesError(t *testing.T) {
	r := newRepo(t, &mockRemote{panicOnProduct: true}, memory.NewFavoriteStore())

	var res productList
	require.NotPanics(t, func() {
		res = r.GetProducts(context.Background())
	})
	assert.Equal(t, result.KindError, res.Kind())
	assert.Contains(t, res.Message(), "boom")
}

func TestGetProducts_StoreErrorBecomesError(t *testing.T) {
	r := newRepo(t,
		&mockRemote{products: okProducts(wireProduct(1, "A"))},
		&failingStore{err: errors.New("disk full")},
	)

	res := r.GetProducts(context.Background())
	assert.Equal(t, result.KindError, res.Kind())
	assert.Contains(t, res.Message(), "disk full")
}

func TestGetSaleProducts_Timeout(t *testing.T) {
	r := newRepo(t, &mockRemote{saleErr: context.DeadlineExceeded}, memory.NewFavoriteStore())

	res := r.GetSaleProducts(context.Background())
	assert.Equal(t, result.KindError, res.Kind())
	assert.NotEmpty(t, res.Message())
}

func TestGetProductDetail(t *testing.T) {
	tests := []struct {
		name     string
		detail   *product.ProductDetailResponse
		wantKind result.Kind
		wantMsg  string
		wantFav  bool
	}{
		{
			name: "favorite product",
			detail: &product.ProductDetailResponse{
				BaseResponse: product.BaseResponse{Status: product.StatusOK},
				Product:      ptr(wireProduct(5, "Lamp")),
			},
			wantKind: result.KindSuccess,
			wantFav:  true,
		},
		{
			name: "not found",
			detail: &product.ProductDetailResponse{
				BaseResponse: product.BaseResponse{Status: 404, Message: "not found"},
			},
			wantKind: result.KindFail,
			wantMsg:  "not found",
		},
		{
			name: "ok status without product",
			detail: &product.ProductDetailResponse{
				BaseResponse: product.BaseResponse{Status: product.StatusOK, Message: "empty"},
			},
			wantKind: result.KindFail,
			wantMsg:  "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRepo(t, &mockRemote{detail: tt.detail}, seeded(t, 5))

			res := r.GetProductDetail(context.Background(), 5)
			require.Equal(t, tt.wantKind, res.Kind())
			assert.Equal(t, tt.wantMsg, res.Message())
			if got, ok := res.Data(); ok {
				assert.Equal(t, 5, got.ID)
				assert.Equal(t, tt.wantFav, got.IsFavorite)
			}
		})
	}
}

func TestSearchAndCategory_PassArguments(t *testing.T) {
	var gotQuery, gotCategory string
	remote := &mockRemote{
		search: func(query string) (*product.ProductsResponse, error) {
			gotQuery = query
			return okProducts(wireProduct(1, "Shoe")), nil
		},
		byCategory: func(category string) (*product.ProductsResponse, error) {
			gotCategory = category
			return okProducts(wireProduct(2, "Hat"), wireProduct(3, "Cap")), nil
		},
	}
	r := newRepo(t, remote, seeded(t, 3))

	res := r.SearchProduct(context.Background(), "sho")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "sho", gotQuery)

	res = r.GetProductsByCategory(context.Background(), "hats")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "hats", gotCategory)
	got, _ := res.Data()
	require.Len(t, got, 2)
	assert.False(t, got[0].IsFavorite)
	assert.True(t, got[1].IsFavorite)
}

func TestGetCategories(t *testing.T) {
	t.Run("pass through", func(t *testing.T) {
		want := []product.Category{{ID: 1, Label: "Shoes"}, {ID: 2, Label: "Hats"}}
		r := newRepo(t, &mockRemote{categories: &product.CategoriesResponse{
			BaseResponse: product.BaseResponse{Status: product.StatusOK},
			Categories:   want,
		}}, memory.NewFavoriteStore())

		got, ok := r.GetCategories(context.Background()).Data()
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("empty", func(t *testing.T) {
		r := newRepo(t, &mockRemote{categories: &product.CategoriesResponse{
			BaseResponse: product.BaseResponse{Status: product.StatusOK},
		}}, memory.NewFavoriteStore())

		got, ok := r.GetCategories(context.Background()).Data()
		require.True(t, ok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error", func(t *testing.T) {
		r := newRepo(t, &mockRemote{categoriesErr: errors.New("reset by peer")}, memory.NewFavoriteStore())

		res := r.GetCategories(context.Background())
		assert.Equal(t, result.KindError, res.Kind())
		assert.Equal(t, "reset by peer", res.Message())
	})
}

func TestCartOperations(t *testing.T) {
	ctx := context.Background()
	remote := &mockRemote{
		cartAdd:      &product.CartResponse{BaseResponse: product.BaseResponse{Status: product.StatusOK, Message: "added"}},
		cartDelete:   &product.BaseResponse{Status: 401, Message: "unauthorized"},
		cartProducts: okProducts(wireProduct(4, "Mug")),
		cartClear:    &product.BaseResponse{Status: product.StatusOK},
	}
	r := newRepo(t, remote, seeded(t, 4))

	added := r.AddToCart(ctx, "u1", 4)
	require.True(t, added.IsSuccess())
	ack, _ := added.Data()
	assert.Equal(t, "added", ack.Message)
	assert.Equal(t, cart.AddRequest{UserID: "u1", ProductID: 4}, remote.lastAdd)

	deleted := r.DeleteFromCart(ctx, "u1", 4)
	assert.Equal(t, result.KindFail, deleted.Kind())
	assert.Equal(t, "unauthorized", deleted.Message())
	assert.Equal(t, cart.DeleteRequest{UserID: "u1", ProductID: 4}, remote.lastDelete)

	listed := r.GetCartProducts(ctx, "u1")
	got, ok := listed.Data()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsFavorite)
	assert.Equal(t, "u1", remote.lastUserID)

	cleared := r.ClearCart(ctx, "u1")
	assert.True(t, cleared.IsSuccess())
	assert.Equal(t, cart.ClearRequest{UserID: "u1"}, remote.lastClear)
}

func TestAddToCart_Errors(t *testing.T) {
	r := newRepo(t, &mockRemote{cartAddErr: errors.New("timeout")}, memory.NewFavoriteStore())
	res := r.AddToCart(context.Background(), "u1", 1)
	assert.Equal(t, result.KindError, res.Kind())

	r = newRepo(t, &mockRemote{}, memory.NewFavoriteStore())
	res = r.AddToCart(context.Background(), "u1", 1)
	assert.Equal(t, result.KindFail, res.Kind())
	assert.Empty(t, res.Message())
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewFavoriteStore()
	r := newRepo(t, &mockRemote{products: okProducts(wireProduct(1, "A"), wireProduct(2, "B"))}, store)

	empty := r.GetFavorites(ctx)
	assert.Equal(t, result.KindFail, empty.Kind())
	assert.Equal(t, NoFavoritesMessage, empty.Message())

	ui := product.ProductUI{ID: 2, Title: "B", Price: decimal.RequireFromString("9.99")}
	require.True(t, r.AddToFavorites(ctx, ui).IsSuccess())
	require.True(t, r.AddToFavorites(ctx, ui).IsSuccess())

	favorites, ok := r.GetFavorites(ctx).Data()
	require.True(t, ok)
	require.Len(t, favorites, 1)
	assert.Equal(t, 2, favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)

	products, _ := r.GetProducts(ctx).Data()
	require.Len(t, products, 2)
	assert.False(t, products[0].IsFavorite)
	assert.True(t, products[1].IsFavorite)

	require.True(t, r.DeleteFromFavorites(ctx, 2).IsSuccess())
	require.True(t, r.DeleteFromFavorites(ctx, 2).IsSuccess())
	products, _ = r.GetProducts(ctx).Data()
	assert.False(t, products[1].IsFavorite)

	require.True(t, r.AddToFavorites(ctx, ui).IsSuccess())
	require.True(t, r.ClearFavorites(ctx).IsSuccess())
	assert.Equal(t, result.KindFail, r.GetFavorites(ctx).Kind())
}

func TestFavorites_StoreErrors(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t, &mockRemote{}, &failingStore{err: errors.New("locked")})

	assert.Equal(t, result.KindError, r.AddToFavorites(ctx, product.ProductUI{ID: 1}).Kind())
	assert.Equal(t, result.KindError, r.DeleteFromFavorites(ctx, 1).Kind())
	assert.Equal(t, result.KindError, r.ClearFavorites(ctx).Kind())

	res := r.GetFavorites(ctx)
	assert.Equal(t, result.KindError, res.Kind())
	assert.Contains(t, res.Message(), "locked")
}
