package viewmodel

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/repository"
	"github.com/xenking/shopfront/internal/result"
	"github.com/xenking/shopfront/internal/session"
	"github.com/xenking/shopfront/internal/storage/memory"
)

// --- Mock implementations ---

type stubRemote struct {
	products *product.ProductsResponse
	sale     *product.ProductsResponse
	saleErr  error
	cart     []product.Product
}

func (s *stubRemote) GetProducts(context.Context) (*product.ProductsResponse, error) {
	return s.products, nil
}

func (s *stubRemote) GetProductDetail(_ context.Context, id int) (*product.ProductDetailResponse, error) {
	for _, p := range s.products.Products {
		if *p.ID == id {
			return &product.ProductDetailResponse{BaseResponse: ok(), Product: &p}, nil
		}
	}
	return &product.ProductDetailResponse{BaseResponse: product.BaseResponse{Status: 404, Message: "not found"}}, nil
}

func (s *stubRemote) GetSaleProducts(context.Context) (*product.ProductsResponse, error) {
	return s.sale, s.saleErr
}

func (s *stubRemote) SearchProduct(_ context.Context, query string) (*product.ProductsResponse, error) {
	if query == "" {
		return &product.ProductsResponse{BaseResponse: product.BaseResponse{Status: 400, Message: "empty query"}}, nil
	}
	return s.products, nil
}

func (s *stubRemote) GetProductsByCategory(context.Context, string) (*product.ProductsResponse, error) {
	return s.products, nil
}

func (s *stubRemote) GetCategories(context.Context) (*product.CategoriesResponse, error) {
	return &product.CategoriesResponse{BaseResponse: ok(), Categories: []product.Category{{ID: 1, Label: "Shoes"}}}, nil
}

func (s *stubRemote) AddToCart(_ context.Context, req cart.AddRequest) (*product.CartResponse, error) {
	id := req.ProductID
	s.cart = append(s.cart, product.Product{ID: &id})
	return &product.CartResponse{BaseResponse: ok()}, nil
}

func (s *stubRemote) DeleteFromCart(_ context.Context, req cart.DeleteRequest) (*product.BaseResponse, error) {
	for i, p := range s.cart {
		if *p.ID == req.ProductID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	return &product.BaseResponse{Status: product.StatusOK}, nil
}

func (s *stubRemote) GetCartProducts(context.Context, string) (*product.ProductsResponse, error) {
	return &product.ProductsResponse{BaseResponse: ok(), Products: s.cart}, nil
}

func (s *stubRemote) ClearCart(context.Context, cart.ClearRequest) (*product.BaseResponse, error) {
	s.cart = nil
	return &product.BaseResponse{Status: product.StatusOK}, nil
}

type brokenStore struct {
	*memory.FavoriteStore
}

func (brokenStore) Add(context.Context, product.Favorite) error { return errors.New("read-only") }

// --- Helpers ---

func ok() product.BaseResponse { return product.BaseResponse{Status: product.StatusOK} }

func wire(ids ...int) *product.ProductsResponse {
	resp := &product.ProductsResponse{BaseResponse: ok()}
	for _, id := range ids {
		title := "product"
		resp.Products = append(resp.Products, product.Product{ID: &id, Title: &title})
	}
	return resp
}

func newRepo(t *testing.T, remote repository.Remote, store product.FavoriteStore) *repository.Repository {
	t.Helper()
	r, err := repository.New(remote, store, repository.Options{})
	require.NoError(t, err)
	return r
}

func favoriteFlags(t *testing.T, s Products) map[int]bool {
	t.Helper()
	require.Equal(t, StatusSuccess, s.Status)
	flags := make(map[int]bool, len(s.Data))
	for _, p := range s.Data {
		flags[p.ID] = p.IsFavorite
	}
	return flags
}

// --- Tests ---

func TestReduce(t *testing.T) {
	s := Reduce(result.Success(42))
	assert.Equal(t, State[int]{Status: StatusSuccess, Data: 42}, s)

	s = Reduce(result.Fail[int]("Products not found"))
	assert.Equal(t, State[int]{Status: StatusEmpty, Message: "Products not found"}, s)

	s = Reduce(result.Error[int]("timeout"))
	assert.Equal(t, State[int]{Status: StatusPopup, Message: "timeout"}, s)
}

func TestFeed_SubscribeGetsCurrentThenUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := NewFeed[int]()
	assert.Equal(t, StatusLoading, f.Current().Status)

	ch := f.Subscribe(ctx)
	assert.Equal(t, Loading[int](), <-ch)

	f.Publish(State[int]{Status: StatusSuccess, Data: 1})
	assert.Equal(t, 1, (<-ch).Data)

	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestFeed_SlowSubscriberSeesNewest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := NewFeed[int]()
	ch := f.Subscribe(ctx)
	for i := 1; i <= 5; i++ {
		f.Publish(State[int]{Status: StatusSuccess, Data: i})
	}

	got := <-ch
	assert.Equal(t, 5, got.Data)
	assert.Equal(t, 5, f.Current().Data)
}

func TestFeed_Load(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := NewFeed[string]()
	f.Publish(State[string]{Status: StatusSuccess, Data: "old"})
	ch := f.Subscribe(ctx)
	<-ch

	s := f.Load(ctx, func(context.Context) result.Result[string] {
		assert.Equal(t, StatusLoading, f.Current().Status)
		return result.Fail[string]("nothing")
	})
	assert.Equal(t, State[string]{Status: StatusEmpty, Message: "nothing"}, s)
	assert.Equal(t, s, <-ch)
}

// blockingFetch returns a fetch that signals started and then waits for
// release before succeeding with data.
func blockingFetch(data int, started, release chan struct{}) func(context.Context) result.Result[int] {
	return func(context.Context) result.Result[int] {
		close(started)
		<-release
		return result.Success(data)
	}
}

func TestFeed_OverlappingLoads(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		newer func(f *Feed[int])
		want  State[int]
	}{
		{
			name: "NewerLoad",
			newer: func(f *Feed[int]) {
				f.Load(ctx, func(context.Context) result.Result[int] { return result.Success(2) })
			},
			want: State[int]{Status: StatusSuccess, Data: 2},
		},
		{
			name: "NewerFailedLoad",
			newer: func(f *Feed[int]) {
				f.Load(ctx, func(context.Context) result.Result[int] { return result.Error[int]("timeout") })
			},
			want: State[int]{Status: StatusPopup, Message: "timeout"},
		},
		{
			name:  "Publish",
			newer: func(f *Feed[int]) { f.Publish(GoToSignIn[int]()) },
			want:  GoToSignIn[int](),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFeed[int]()
			started, release := make(chan struct{}), make(chan struct{})
			done := make(chan State[int], 1)
			go func() { done <- f.Load(ctx, blockingFetch(1, started, release)) }()
			<-started

			tt.newer(f)
			close(release)

			older := <-done
			assert.Equal(t, State[int]{Status: StatusSuccess, Data: 1}, older, "stale load still returns its outcome")
			assert.Equal(t, tt.want, f.Current())
		})
	}
}

func TestHome_ToggleFavoriteRefreshesBothFeeds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewFavoriteStore()
	remote := &stubRemote{products: wire(1, 2), sale: wire(2)}
	home := NewHome(newRepo(t, remote, store), session.NewManager("u1"))

	products := home.LoadProducts(ctx)
	assert.Equal(t, map[int]bool{1: false, 2: false}, favoriteFlags(t, products))

	target := products.Data[1]
	s := home.SetFavoriteState(ctx, target)
	require.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, map[int]bool{1: false, 2: true}, favoriteFlags(t, home.Products.Current()))
	assert.Equal(t, map[int]bool{2: true}, favoriteFlags(t, home.Sale.Current()))

	target = home.Products.Current().Data[1]
	require.True(t, target.IsFavorite)
	home.SetFavoriteState(ctx, target)
	assert.Equal(t, map[int]bool{1: false, 2: false}, favoriteFlags(t, home.Products.Current()))
	assert.Equal(t, map[int]bool{2: false}, favoriteFlags(t, home.Sale.Current()))
}

func TestHome_ToggleFailureShowsPopup(t *testing.T) {
	ctx := context.Background()
	store := brokenStore{memory.NewFavoriteStore()}
	home := NewHome(newRepo(t, &stubRemote{products: wire(1), sale: wire()}, store), session.NewManager("u1"))
	home.LoadProducts(ctx)

	s := home.SetFavoriteState(ctx, product.ProductUI{ID: 1})
	assert.Equal(t, StatusPopup, s.Status)
	assert.Equal(t, StatusPopup, home.Products.Current().Status)
	assert.Contains(t, home.Products.Current().Message, "read-only")
	assert.Equal(t, StatusLoading, home.Sale.Current().Status, "sale feed is not reloaded")
}

func TestHome_SaleErrorIsPopup(t *testing.T) {
	home := NewHome(newRepo(t, &stubRemote{saleErr: context.DeadlineExceeded}, memory.NewFavoriteStore()), session.NewManager(""))

	s := home.LoadSaleProducts(context.Background())
	assert.Equal(t, StatusPopup, s.Status)
	assert.NotEmpty(t, s.Message)
}

func TestHome_LogOut(t *testing.T) {
	ctx := context.Background()
	sess := session.NewManager("u1")
	home := NewHome(newRepo(t, &stubRemote{}, memory.NewFavoriteStore()), sess)

	require.NoError(t, home.LogOut(ctx))
	assert.Equal(t, StatusSignIn, home.Products.Current().Status)
	_, signedIn := sess.UserID()
	assert.False(t, signedIn)
}

func TestDetailSearchCategory(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, &stubRemote{products: wire(1, 2)}, memory.NewFavoriteStore())

	detail := NewDetail(repo, nil)
	s := detail.Load(ctx, 2)
	require.Equal(t, StatusSuccess, s.Status)
	require.Equal(t, StatusSuccess, detail.SetFavoriteState(ctx, s.Data).Status)
	assert.True(t, detail.Product.Current().Data.IsFavorite)

	missing := detail.Load(ctx, 9)
	assert.Equal(t, State[product.ProductUI]{Status: StatusEmpty, Message: "not found"}, missing)

	search := NewSearch(repo)
	assert.Equal(t, StatusEmpty, search.Query(ctx, "").Status)
	found := search.Query(ctx, "shoe")
	assert.Equal(t, map[int]bool{1: false, 2: true}, favoriteFlags(t, found))

	category := NewCategory(repo)
	cats := category.LoadCategories(ctx)
	require.Equal(t, StatusSuccess, cats.Status)
	assert.Equal(t, "Shoes", cats.Data[0].Label)
	assert.Len(t, category.LoadProducts(ctx, "Shoes").Data, 2)
}

func TestDetail_ToggleRefreshesHome(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, &stubRemote{products: wire(1, 2), sale: wire(2)}, memory.NewFavoriteStore())
	home := NewHome(repo, session.NewManager("u1"))
	detail := NewDetail(repo, home)

	home.LoadProducts(ctx)
	home.LoadSaleProducts(ctx)
	s := detail.Load(ctx, 2)
	require.Equal(t, StatusSuccess, s.Status)

	require.Equal(t, StatusSuccess, detail.SetFavoriteState(ctx, s.Data).Status)
	assert.True(t, detail.Product.Current().Data.IsFavorite)
	assert.Equal(t, map[int]bool{1: false, 2: true}, favoriteFlags(t, home.Products.Current()))
	assert.Equal(t, map[int]bool{2: true}, favoriteFlags(t, home.Sale.Current()))

	require.Equal(t, StatusSuccess, detail.SetFavoriteState(ctx, detail.Product.Current().Data).Status)
	assert.Equal(t, map[int]bool{1: false, 2: false}, favoriteFlags(t, home.Products.Current()))
	assert.Equal(t, map[int]bool{2: false}, favoriteFlags(t, home.Sale.Current()))
}

func TestCart(t *testing.T) {
	ctx := context.Background()
	sess := session.NewManager("")
	remote := &stubRemote{}
	c := NewCart(newRepo(t, remote, memory.NewFavoriteStore()), sess)

	assert.Equal(t, StatusSignIn, c.Add(ctx, 1).Status)
	assert.Equal(t, StatusSignIn, c.Products.Current().Status)

	require.NoError(t, sess.SignIn(ctx, "u1"))
	require.Equal(t, StatusSuccess, c.Add(ctx, 1).Status)
	require.Equal(t, StatusSuccess, c.Add(ctx, 2).Status)
	assert.Len(t, c.Products.Current().Data, 2)

	require.Equal(t, StatusSuccess, c.Delete(ctx, 1).Status)
	cur := c.Products.Current()
	require.Len(t, cur.Data, 1)
	assert.Equal(t, 2, cur.Data[0].ID)

	require.Equal(t, StatusSuccess, c.Clear(ctx).Status)
	cur = c.Products.Current()
	assert.Equal(t, StatusSuccess, cur.Status)
	assert.Empty(t, cur.Data)
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, &stubRemote{}, memory.NewFavoriteStore())
	f := NewFavorites(repo)

	assert.Equal(t, State[[]product.ProductUI]{Status: StatusEmpty, Message: repository.NoFavoritesMessage}, f.Load(ctx))

	require.True(t, repo.AddToFavorites(ctx, product.ProductUI{ID: 1}).IsSuccess())
	require.True(t, repo.AddToFavorites(ctx, product.ProductUI{ID: 2}).IsSuccess())
	assert.Equal(t, map[int]bool{1: true, 2: true}, favoriteFlags(t, f.Load(ctx)))

	require.Equal(t, StatusSuccess, f.Delete(ctx, 1).Status)
	assert.Equal(t, map[int]bool{2: true}, favoriteFlags(t, f.Products.Current()))

	require.Equal(t, StatusSuccess, f.Clear(ctx).Status)
	assert.Equal(t, StatusEmpty, f.Products.Current().Status)
}
