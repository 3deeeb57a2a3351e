package handler

import (
	"context"

	"github.com/xenking/shopfront/gen/oas"
)

// GetProduct implements getProduct operation.
func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.ProductState, error) {
	return toProductState(h.screens.Detail.Load(ctx, params.ID)), nil
}

// SetProductFavorite implements setProductFavorite operation.
//
// The body must describe the product named by the path.
func (h *Handler) SetProductFavorite(ctx context.Context, req *oas.Product, params oas.SetProductFavoriteParams) (oas.SetProductFavoriteRes, error) {
	if req.ID != params.ID {
		return &oas.SetProductFavoriteBadRequest{
			Status:  oas.StateStatusPopup,
			Message: oas.NewOptString("product id does not match path"),
		}, nil
	}
	p, err := fromProduct(req)
	if err != nil {
		return &oas.SetProductFavoriteBadRequest{
			Status:  oas.StateStatusPopup,
			Message: oas.NewOptString("invalid product: " + err.Error()),
		}, nil
	}
	return toActionState(h.screens.Detail.SetFavoriteState(ctx, p)), nil
}

// SearchProducts implements searchProducts operation.
func (h *Handler) SearchProducts(ctx context.Context, params oas.SearchProductsParams) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Search.Query(ctx, params.Query.Or(""))), nil
}

// GetCategories implements getCategories operation.
func (h *Handler) GetCategories(ctx context.Context) (*oas.CategoriesState, error) {
	return toCategoriesState(h.screens.Category.LoadCategories(ctx)), nil
}

// GetCategoryProducts implements getCategoryProducts operation.
func (h *Handler) GetCategoryProducts(ctx context.Context, params oas.GetCategoryProductsParams) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Category.LoadProducts(ctx, params.Category)), nil
}

// GetCart implements getCart operation.
func (h *Handler) GetCart(ctx context.Context) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Cart.Load(ctx)), nil
}

// AddToCart implements addToCart operation.
func (h *Handler) AddToCart(ctx context.Context, params oas.AddToCartParams) (*oas.AckState, error) {
	s := h.screens.Cart.Add(ctx, params.ID)
	return toAckState(s.Status, s.Message, s.Data.BaseResponse), nil
}

// DeleteFromCart implements deleteFromCart operation.
func (h *Handler) DeleteFromCart(ctx context.Context, params oas.DeleteFromCartParams) (*oas.AckState, error) {
	s := h.screens.Cart.Delete(ctx, params.ID)
	return toAckState(s.Status, s.Message, s.Data), nil
}

// ClearCart implements clearCart operation.
func (h *Handler) ClearCart(ctx context.Context) (*oas.AckState, error) {
	s := h.screens.Cart.Clear(ctx)
	return toAckState(s.Status, s.Message, s.Data), nil
}

// GetFavorites implements getFavorites operation.
func (h *Handler) GetFavorites(ctx context.Context) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Favorites.Load(ctx)), nil
}

// DeleteFavorite implements deleteFavorite operation.
func (h *Handler) DeleteFavorite(ctx context.Context, params oas.DeleteFavoriteParams) (*oas.ActionState, error) {
	return toActionState(h.screens.Favorites.Delete(ctx, params.ID)), nil
}

// ClearFavorites implements clearFavorites operation.
func (h *Handler) ClearFavorites(ctx context.Context) (*oas.ActionState, error) {
	return toActionState(h.screens.Favorites.Clear(ctx)), nil
}
