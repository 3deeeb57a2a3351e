// Package cart holds the request shapes for the remote cart endpoints.
package cart

// AddRequest adds a product to the user's cart.
type AddRequest struct {
	UserID    string
	ProductID int
}

// DeleteRequest removes a product from the user's cart.
type DeleteRequest struct {
	UserID    string
	ProductID int
}

// ClearRequest empties the user's cart.
type ClearRequest struct {
	UserID string
}
