package viewmodel

import (
	"context"
	"sync"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/shopfront/internal/domain/product"
)

// Home drives the catalog screen: all products, products on sale, favorite
// toggling and log out.
type Home struct {
	repo    Repository
	session Session

	Products *Feed[[]product.ProductUI]
	Sale     *Feed[[]product.ProductUI]
}

// NewHome returns a Home with both feeds in the Loading state.
func NewHome(repo Repository, session Session) *Home {
	return &Home{
		repo:     repo,
		session:  session,
		Products: NewFeed[[]product.ProductUI](),
		Sale:     NewFeed[[]product.ProductUI](),
	}
}

// LoadProducts refreshes the product feed.
func (h *Home) LoadProducts(ctx context.Context) Products {
	return h.Products.Load(ctx, h.repo.GetProducts)
}

// LoadSaleProducts refreshes the sale feed.
func (h *Home) LoadSaleProducts(ctx context.Context) Products {
	return h.Sale.Load(ctx, h.repo.GetSaleProducts)
}

// SetFavoriteState removes p from the favorites when it is one and adds it
// otherwise, then reloads both feeds so every isFavorite flag is recomputed.
// A failed write is shown as a popup on the product feed and nothing is
// reloaded.
func (h *Home) SetFavoriteState(ctx context.Context, p product.ProductUI) State[struct{}] {
	return mutate(ctx, h.repo, p, h.Products, func() { h.Reload(ctx) })
}

// Reload refreshes both feeds concurrently.
func (h *Home) Reload(ctx context.Context) {
	// TODO: patch the cached feeds in place instead of reloading both lists.
	var wg sync.WaitGroup
	wg.Go(func() { h.LoadProducts(ctx) })
	wg.Go(func() { h.LoadSaleProducts(ctx) })
	wg.Wait()
}

// LogOut ends the session and sends the product feed to the sign-in state.
func (h *Home) LogOut(ctx context.Context) error {
	if err := h.session.LogOut(ctx); err != nil {
		zctx.From(ctx).Warn("Log out failed", zap.Error(err))
		return err
	}
	h.Products.Publish(GoToSignIn[[]product.ProductUI]())
	return nil
}
