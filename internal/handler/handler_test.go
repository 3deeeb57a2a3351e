package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shopfront/gen/oas"
	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/repository"
	"github.com/xenking/shopfront/internal/session"
	"github.com/xenking/shopfront/internal/storage/memory"
	"github.com/xenking/shopfront/internal/viewmodel"
)

// --- Mock implementations ---

type mockRemote struct {
	products []product.Product
}

func (m *mockRemote) list() (*product.ProductsResponse, error) {
	return &product.ProductsResponse{BaseResponse: okBase(), Products: m.products}, nil
}

func (m *mockRemote) GetProducts(context.Context) (*product.ProductsResponse, error) { return m.list() }

func (m *mockRemote) GetProductDetail(_ context.Context, id int) (*product.ProductDetailResponse, error) {
	for _, p := range m.products {
		if *p.ID == id {
			return &product.ProductDetailResponse{BaseResponse: okBase(), Product: &p}, nil
		}
	}
	return &product.ProductDetailResponse{BaseResponse: product.BaseResponse{Status: 404, Message: "not found"}}, nil
}

func (m *mockRemote) GetSaleProducts(context.Context) (*product.ProductsResponse, error) {
	return nil, context.DeadlineExceeded
}

func (m *mockRemote) SearchProduct(context.Context, string) (*product.ProductsResponse, error) {
	return m.list()
}

func (m *mockRemote) GetProductsByCategory(context.Context, string) (*product.ProductsResponse, error) {
	return &product.ProductsResponse{BaseResponse: product.BaseResponse{Status: 404, Message: "no such category"}}, nil
}

func (m *mockRemote) GetCategories(context.Context) (*product.CategoriesResponse, error) {
	return &product.CategoriesResponse{BaseResponse: okBase(), Categories: []product.Category{{ID: 1, Label: "Shoes"}}}, nil
}

func (m *mockRemote) AddToCart(context.Context, cart.AddRequest) (*product.CartResponse, error) {
	return &product.CartResponse{BaseResponse: okBase()}, nil
}

func (m *mockRemote) DeleteFromCart(context.Context, cart.DeleteRequest) (*product.BaseResponse, error) {
	return &product.BaseResponse{Status: product.StatusOK}, nil
}

func (m *mockRemote) GetCartProducts(context.Context, string) (*product.ProductsResponse, error) {
	return m.list()
}

func (m *mockRemote) ClearCart(context.Context, cart.ClearRequest) (*product.BaseResponse, error) {
	return &product.BaseResponse{Status: product.StatusOK}, nil
}

// --- Helpers ---

func okBase() product.BaseResponse { return product.BaseResponse{Status: product.StatusOK} }

type fixture struct {
	handler *Handler
	server  http.Handler
	screens Screens
	session *session.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	one, two := 1, 2
	title := "Sneaker"
	remote := &mockRemote{products: []product.Product{{ID: &one, Title: &title}, {ID: &two}}}

	repo, err := repository.New(remote, memory.NewFavoriteStore(), repository.Options{})
	require.NoError(t, err)

	sess := session.NewManager("")
	home := viewmodel.NewHome(repo, sess)
	screens := Screens{
		Home:      home,
		Detail:    viewmodel.NewDetail(repo, home),
		Search:    viewmodel.NewSearch(repo),
		Category:  viewmodel.NewCategory(repo),
		Cart:      viewmodel.NewCart(repo, sess),
		Favorites: viewmodel.NewFavorites(repo),
	}
	h := NewHandler(screens, sess)

	api, err := oas.NewServer(h,
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(ErrorHandler),
	)
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/home/stream", h.HomeStream)
	mux.Handle("/api/", api)

	return fixture{handler: h, server: mux, screens: screens, session: sess}
}

func (f fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.server.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

// --- Tests ---

func TestHomeEndpoints(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodGet, "/api/home/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	require.Len(t, body["data"], 2)

	_, body = f.do(t, http.MethodGet, "/api/home/sale", "")
	assert.Equal(t, "popup", body["status"])
	assert.NotEmpty(t, body["message"])

	_, body = f.do(t, http.MethodPost, "/api/home/favorite", `{"id":1,"title":"Sneaker","price":"10.50","isFavorite":false}`)
	assert.Equal(t, "success", body["status"])

	products := f.screens.Home.Products.Current()
	require.Equal(t, viewmodel.StatusSuccess, products.Status)
	assert.True(t, products.Data[0].IsFavorite)

	_, body = f.do(t, http.MethodGet, "/api/favorites", "")
	assert.Equal(t, "success", body["status"])
	require.Len(t, body["data"], 1)

	_, body = f.do(t, http.MethodDelete, "/api/favorites", "")
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, viewmodel.StatusEmpty, f.screens.Favorites.Products.Current().Status)
}

func TestBadRequests(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name                 string
		method, target, body string
		message              string
	}{
		{"NonNumericID", http.MethodGet, "/api/products/abc", "", "invalid request parameters"},
		{"MalformedBody", http.MethodPost, "/api/home/favorite", "{not json", "invalid request body"},
		{"MissingProductID", http.MethodPost, "/api/home/favorite", `{"title":"Sneaker"}`, "invalid request body"},
		{"BadPrice", http.MethodPost, "/api/home/favorite", `{"id":1,"price":"ten"}`, ""},
		{"PathMismatch", http.MethodPost, "/api/products/2/favorite", `{"id":1}`, "product id does not match path"},
		{"EmptyUserID", http.MethodPost, "/api/session", `{"userId":""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := f.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "popup", body["status"])
			assert.NotEmpty(t, body["message"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"Params", &ogenerrors.DecodeParamsError{Err: errors.New("bad id")}, http.StatusBadRequest, "invalid request parameters"},
		{"Body", &ogenerrors.DecodeRequestError{Err: errors.New("bad json")}, http.StatusBadRequest, "invalid request body"},
		{"NotImplemented", errors.Wrap(ht.ErrNotImplemented, "op"), http.StatusNotImplemented, "not implemented"},
		{"Internal", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorHandler(context.Background(), w, httptest.NewRequest(http.MethodGet, "/api/cart", http.NoBody), tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"status":"popup","message":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestSetProductFavorite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.handler.SetProductFavorite(ctx, &oas.Product{ID: 1}, oas.SetProductFavoriteParams{ID: 2})
	require.NoError(t, err)
	require.IsType(t, &oas.SetProductFavoriteBadRequest{}, res)

	res, err = f.handler.SetProductFavorite(ctx, &oas.Product{ID: 1, Price: oas.NewOptString("10.50")}, oas.SetProductFavoriteParams{ID: 1})
	require.NoError(t, err)
	require.IsType(t, &oas.ActionState{}, res)
	assert.Equal(t, oas.StateStatusSuccess, res.(*oas.ActionState).Status)

	// The detail toggle refreshes the home feeds too.
	products := f.screens.Home.Products.Current()
	require.Equal(t, viewmodel.StatusSuccess, products.Status)
	assert.True(t, products.Data[0].IsFavorite)
	assert.False(t, products.Data[1].IsFavorite)
}

func TestDetailSearchCategories(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Sneaker", body["data"].(map[string]any)["title"])

	_, body = f.do(t, http.MethodGet, "/api/products/9", "")
	assert.Equal(t, map[string]any{"status": "empty", "message": "not found"}, body)

	_, body = f.do(t, http.MethodGet, "/api/search?query=snea", "")
	assert.Equal(t, "success", body["status"])

	_, body = f.do(t, http.MethodGet, "/api/categories", "")
	assert.Equal(t, []any{map[string]any{"id": float64(1), "name": "Shoes"}}, body["data"])

	_, body = f.do(t, http.MethodGet, "/api/categories/hats/products", "")
	assert.Equal(t, map[string]any{"status": "empty", "message": "no such category"}, body)
}

func TestCartRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodPost, "/api/cart/1", "")
	assert.Equal(t, "sign_in", body["status"])

	_, body = f.do(t, http.MethodPost, "/api/session", `{"userId":"u1"}`)
	assert.Equal(t, "success", body["status"])

	_, body = f.do(t, http.MethodPost, "/api/cart/1", "")
	assert.Equal(t, "success", body["status"])
	_, body = f.do(t, http.MethodGet, "/api/cart", "")
	assert.Equal(t, "success", body["status"])
	_, body = f.do(t, http.MethodDelete, "/api/cart/1", "")
	assert.Equal(t, "success", body["status"])
	_, body = f.do(t, http.MethodDelete, "/api/cart", "")
	assert.Equal(t, "success", body["status"])

	_, body = f.do(t, http.MethodDelete, "/api/session", "")
	assert.Equal(t, "sign_in", body["status"])
	_, signedIn := f.session.UserID()
	assert.False(t, signedIn)
}

func TestHomeStream(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.server)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/home/stream", http.NoBody)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(map[string]string)
	sc := bufio.NewScanner(resp.Body)
	var name string
	for len(events) < 2 && sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			events[name] = strings.TrimPrefix(line, "data: ")
		}
	}
	require.NoError(t, sc.Err())
	assert.JSONEq(t, `{"status":"loading"}`, events["products"])
	assert.JSONEq(t, `{"status":"loading"}`, events["sale"])

	f.screens.Home.LoadProducts(ctx)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "data: ") && strings.Contains(line, `"success"`) {
			break
		}
	}
	require.NoError(t, sc.Err())
}
