package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusOK is the backend status value that marks a successful response. It
// is carried inside the response body and is independent of the HTTP code.
const StatusOK = 200

// Product is a catalog record as received from the backend. Every field may
// be missing or null.
type Product struct {
	ID          *int
	Title       *string
	Price       decimal.NullDecimal
	SalePrice   decimal.NullDecimal
	Description *string
	Category    *string
	ImageOne    *string
	ImageTwo    *string
	ImageThree  *string
	Rate        *float64
	Count       *int
	SaleState   *bool
}

// ProductUI is a product prepared for presentation, with defaults resolved and
// the favorite flag derived from the local store.
type ProductUI struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageOne    string          `json:"imageOne"`
	ImageTwo    string          `json:"imageTwo"`
	ImageThree  string          `json:"imageThree"`
	Rate        float64         `json:"rate"`
	Count       int             `json:"count"`
	SaleState   bool            `json:"saleState"`
	IsFavorite  bool            `json:"isFavorite"`
}

// Favorite is the locally persisted copy of a favorited product, keyed by ID.
type Favorite struct {
	ID          int
	Title       string
	Price       decimal.Decimal
	SalePrice   decimal.Decimal
	Description string
	Category    string
	ImageOne    string
	ImageTwo    string
	ImageThree  string
	Rate        float64
	Count       int
	SaleState   bool
}

// Category is read-only reference data served by the backend.
type Category struct {
	ID    int    `json:"id"`
	Label string `json:"name"`
}

// BaseResponse is the envelope shared by every backend response.
type BaseResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the backend marked the response as successful.
func (r BaseResponse) OK() bool { return r.Status == StatusOK }

// Base returns the envelope itself; responses embedding BaseResponse expose it
// through this method.
func (r BaseResponse) Base() BaseResponse { return r }

// ProductsResponse carries a list of products.
type ProductsResponse struct {
	BaseResponse
	Products []Product
}

// ProductDetailResponse carries a single product.
type ProductDetailResponse struct {
	BaseResponse
	Product *Product
}

// CategoriesResponse carries the category list.
type CategoriesResponse struct {
	BaseResponse
	Categories []Category
}

// CartResponse acknowledges an add-to-cart request.
type CartResponse struct {
	BaseResponse
}

// IDSet is the set of favorited product identifiers.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// FavoriteStore persists favorited products on the device.
type FavoriteStore interface {
	ProductIDs(ctx context.Context) (IDSet, error)
	Products(ctx context.Context) ([]Favorite, error)
	Add(ctx context.Context, f Favorite) error
	Delete(ctx context.Context, id int) error
	Clear(ctx context.Context) error
}
