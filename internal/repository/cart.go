package repository

import (
	"context"

	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

// AddToCart adds productID to the cart of userID and returns the backend
// acknowledgement.
func (r *Repository) AddToCart(ctx context.Context, userID string, productID int) result.Result[product.CartResponse] {
	return run(ctx, r, "AddToCart", func(ctx context.Context) (result.Result[product.CartResponse], error) {
		resp, err := r.remote.AddToCart(ctx, cart.AddRequest{UserID: userID, ProductID: productID})
		if err != nil {
			return result.Result[product.CartResponse]{}, err
		}
		return acknowledge(resp), nil
	})
}

// DeleteFromCart removes productID from the cart of userID.
func (r *Repository) DeleteFromCart(ctx context.Context, userID string, productID int) result.Result[product.BaseResponse] {
	return run(ctx, r, "DeleteFromCart", func(ctx context.Context) (result.Result[product.BaseResponse], error) {
		resp, err := r.remote.DeleteFromCart(ctx, cart.DeleteRequest{UserID: userID, ProductID: productID})
		if err != nil {
			return result.Result[product.BaseResponse]{}, err
		}
		return acknowledge(resp), nil
	})
}

// GetCartProducts returns the products in the cart of userID.
func (r *Repository) GetCartProducts(ctx context.Context, userID string) productList {
	return r.listProducts(ctx, "GetCartProducts", func(ctx context.Context) (*product.ProductsResponse, error) {
		return r.remote.GetCartProducts(ctx, userID)
	})
}

// ClearCart empties the cart of userID.
func (r *Repository) ClearCart(ctx context.Context, userID string) result.Result[product.BaseResponse] {
	return run(ctx, r, "ClearCart", func(ctx context.Context) (result.Result[product.BaseResponse], error) {
		resp, err := r.remote.ClearCart(ctx, cart.ClearRequest{UserID: userID})
		if err != nil {
			return result.Result[product.BaseResponse]{}, err
		}
		return acknowledge(resp), nil
	})
}

// envelope is satisfied by every backend response through BaseResponse.
type envelope interface {
	Base() product.BaseResponse
}

// acknowledge passes a mutation response through unchanged when its status is
// OK. A missing response is a Fail without message.
func acknowledge[T envelope](resp *T) result.Result[T] {
	if resp == nil {
		return result.Fail[T]("")
	}
	if base := (*resp).Base(); !base.OK() {
		return result.Fail[T](base.Message)
	}
	return result.Success(*resp)
}
