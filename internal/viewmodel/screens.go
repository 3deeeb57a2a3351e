package viewmodel

import (
	"context"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

// Detail drives the product detail screen.
type Detail struct {
	repo    Repository
	home    *Home
	Product *Feed[product.ProductUI]
}

// NewDetail returns a Detail in the Loading state. Favorite toggles also
// refresh home when it is not nil.
func NewDetail(repo Repository, home *Home) *Detail {
	return &Detail{repo: repo, home: home, Product: NewFeed[product.ProductUI]()}
}

// Load fetches the product with the given id.
func (d *Detail) Load(ctx context.Context, id int) State[product.ProductUI] {
	return d.Product.Load(ctx, func(ctx context.Context) result.Result[product.ProductUI] {
		return d.repo.GetProductDetail(ctx, id)
	})
}

// SetFavoriteState toggles the favorite flag of p, reloads it and then the
// home feeds so their isFavorite flags agree with the detail screen.
func (d *Detail) SetFavoriteState(ctx context.Context, p product.ProductUI) State[struct{}] {
	return mutate(ctx, d.repo, p, d.Product, func() {
		d.Load(ctx, p.ID)
		if d.home != nil {
			d.home.Reload(ctx)
		}
	})
}

// Search drives the search screen.
type Search struct {
	repo    Repository
	Results *Feed[[]product.ProductUI]
}

// NewSearch returns a Search in the Loading state.
func NewSearch(repo Repository) *Search {
	return &Search{repo: repo, Results: NewFeed[[]product.ProductUI]()}
}

// Query runs a product search.
func (s *Search) Query(ctx context.Context, query string) Products {
	return s.Results.Load(ctx, func(ctx context.Context) result.Result[[]product.ProductUI] {
		return s.repo.SearchProduct(ctx, query)
	})
}

// Category drives the category browser: the category list and the products
// of the selected category.
type Category struct {
	repo       Repository
	Categories *Feed[[]product.Category]
	Products   *Feed[[]product.ProductUI]
}

// NewCategory returns a Category with both feeds in the Loading state.
func NewCategory(repo Repository) *Category {
	return &Category{
		repo:       repo,
		Categories: NewFeed[[]product.Category](),
		Products:   NewFeed[[]product.ProductUI](),
	}
}

// LoadCategories refreshes the category list.
func (c *Category) LoadCategories(ctx context.Context) State[[]product.Category] {
	return c.Categories.Load(ctx, c.repo.GetCategories)
}

// LoadProducts fetches the products of category.
func (c *Category) LoadProducts(ctx context.Context, category string) Products {
	return c.Products.Load(ctx, func(ctx context.Context) result.Result[[]product.ProductUI] {
		return c.repo.GetProductsByCategory(ctx, category)
	})
}

// Cart drives the cart screen of the signed-in user. Without a session every
// action publishes the sign-in state.
type Cart struct {
	repo     Repository
	session  Session
	Products *Feed[[]product.ProductUI]
}

// NewCart returns a Cart in the Loading state.
func NewCart(repo Repository, session Session) *Cart {
	return &Cart{repo: repo, session: session, Products: NewFeed[[]product.ProductUI]()}
}

// Load fetches the cart contents.
func (c *Cart) Load(ctx context.Context) Products {
	userID, ok := c.user()
	if !ok {
		return c.Products.Current()
	}
	return c.Products.Load(ctx, func(ctx context.Context) result.Result[[]product.ProductUI] {
		return c.repo.GetCartProducts(ctx, userID)
	})
}

// Add puts productID into the cart and returns the acknowledgement state.
// The cart feed is reloaded after a successful add.
func (c *Cart) Add(ctx context.Context, productID int) State[product.CartResponse] {
	userID, ok := c.user()
	if !ok {
		return GoToSignIn[product.CartResponse]()
	}
	return apply(c.Products, c.repo.AddToCart(ctx, userID, productID), func() { c.Load(ctx) })
}

// Delete removes productID from the cart and reloads it.
func (c *Cart) Delete(ctx context.Context, productID int) State[product.BaseResponse] {
	userID, ok := c.user()
	if !ok {
		return GoToSignIn[product.BaseResponse]()
	}
	return apply(c.Products, c.repo.DeleteFromCart(ctx, userID, productID), func() { c.Load(ctx) })
}

// Clear empties the cart and reloads it.
func (c *Cart) Clear(ctx context.Context) State[product.BaseResponse] {
	userID, ok := c.user()
	if !ok {
		return GoToSignIn[product.BaseResponse]()
	}
	return apply(c.Products, c.repo.ClearCart(ctx, userID), func() { c.Load(ctx) })
}

func (c *Cart) user() (string, bool) {
	userID, ok := c.session.UserID()
	if !ok {
		c.Products.Publish(GoToSignIn[[]product.ProductUI]())
	}
	return userID, ok
}

// Favorites drives the favorites screen.
type Favorites struct {
	repo     Repository
	Products *Feed[[]product.ProductUI]
}

// NewFavorites returns a Favorites in the Loading state.
func NewFavorites(repo Repository) *Favorites {
	return &Favorites{repo: repo, Products: NewFeed[[]product.ProductUI]()}
}

// Load reads the stored favorites. An empty store shows the empty screen.
func (f *Favorites) Load(ctx context.Context) Products {
	return f.Products.Load(ctx, f.repo.GetFavorites)
}

// Delete removes the favorite with the given id and reloads the list.
func (f *Favorites) Delete(ctx context.Context, id int) State[struct{}] {
	return apply(f.Products, f.repo.DeleteFromFavorites(ctx, id), func() { f.Load(ctx) })
}

// Clear removes every favorite and reloads the list.
func (f *Favorites) Clear(ctx context.Context) State[struct{}] {
	return apply(f.Products, f.repo.ClearFavorites(ctx), func() { f.Load(ctx) })
}

// apply reduces the outcome of a mutation. On success reload runs; otherwise
// the failure is published on feed so the screen shows it.
func apply[M, T any](feed *Feed[T], mutation result.Result[M], reload func()) State[M] {
	s := Reduce(mutation)
	if s.Status != StatusSuccess {
		feed.Publish(State[T]{Status: s.Status, Message: s.Message})
		return s
	}
	reload()
	return s
}

// mutate toggles the favorite flag of p and hands the outcome to apply.
func mutate[T any](ctx context.Context, repo Repository, p product.ProductUI, feed *Feed[T], reload func()) State[struct{}] {
	if p.IsFavorite {
		return apply(feed, repo.DeleteFromFavorites(ctx, p.ID), reload)
	}
	return apply(feed, repo.AddToFavorites(ctx, p), reload)
}
