// Package viewmodel projects repository results into per-screen UI states and
// publishes them to subscribers.
package viewmodel

import (
	"context"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

// Status names a UI state variant.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusPopup   Status = "popup"
	StatusSignIn  Status = "sign_in"
)

// State is an immutable screen state. Data is set only for StatusSuccess and
// Message only for StatusEmpty and StatusPopup.
type State[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitzero"`
	Message string `json:"message,omitempty"`
}

// Loading returns the state entered on every fetch trigger.
func Loading[T any]() State[T] { return State[T]{Status: StatusLoading} }

// GoToSignIn returns the state published after the user logs out.
func GoToSignIn[T any]() State[T] { return State[T]{Status: StatusSignIn} }

// Reduce maps a repository outcome to the next state: Success shows the data,
// Fail shows an empty screen, Error shows a popup.
func Reduce[T any](r result.Result[T]) State[T] {
	return result.Match(r,
		func(data T) State[T] { return State[T]{Status: StatusSuccess, Data: data} },
		func(msg string) State[T] { return State[T]{Status: StatusEmpty, Message: msg} },
		func(msg string) State[T] { return State[T]{Status: StatusPopup, Message: msg} },
	)
}

// Products is the state of a product list.
type Products = State[[]product.ProductUI]

// Repository is the set of use cases the screens depend on.
type Repository interface {
	GetProducts(ctx context.Context) result.Result[[]product.ProductUI]
	GetProductDetail(ctx context.Context, id int) result.Result[product.ProductUI]
	GetSaleProducts(ctx context.Context) result.Result[[]product.ProductUI]
	SearchProduct(ctx context.Context, query string) result.Result[[]product.ProductUI]
	GetProductsByCategory(ctx context.Context, category string) result.Result[[]product.ProductUI]
	GetCategories(ctx context.Context) result.Result[[]product.Category]

	AddToCart(ctx context.Context, userID string, productID int) result.Result[product.CartResponse]
	DeleteFromCart(ctx context.Context, userID string, productID int) result.Result[product.BaseResponse]
	GetCartProducts(ctx context.Context, userID string) result.Result[[]product.ProductUI]
	ClearCart(ctx context.Context, userID string) result.Result[product.BaseResponse]

	AddToFavorites(ctx context.Context, p product.ProductUI) result.Result[struct{}]
	DeleteFromFavorites(ctx context.Context, id int) result.Result[struct{}]
	ClearFavorites(ctx context.Context) result.Result[struct{}]
	GetFavorites(ctx context.Context) result.Result[[]product.ProductUI]
}

// Session is the sign-in collaborator.
type Session interface {
	UserID() (string, bool)
	LogOut(ctx context.Context) error
}
