package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

// NoFavoritesMessage is the Fail message of GetFavorites on an empty store.
const NoFavoritesMessage = "Products not found"

// AddToFavorites stores p locally. An existing entry with the same id is
// replaced.
func (r *Repository) AddToFavorites(ctx context.Context, p product.ProductUI) result.Result[struct{}] {
	return run(ctx, r, "AddToFavorites", func(ctx context.Context) (result.Result[struct{}], error) {
		if err := r.favorites.Add(ctx, p.ToFavorite()); err != nil {
			return result.Result[struct{}]{}, errors.Wrapf(err, "add favorite %d", p.ID)
		}
		return result.Success(struct{}{}), nil
	})
}

// DeleteFromFavorites removes the favorite with the given id. Removing an
// absent id succeeds.
func (r *Repository) DeleteFromFavorites(ctx context.Context, id int) result.Result[struct{}] {
	return run(ctx, r, "DeleteFromFavorites", func(ctx context.Context) (result.Result[struct{}], error) {
		if err := r.favorites.Delete(ctx, id); err != nil {
			return result.Result[struct{}]{}, errors.Wrapf(err, "delete favorite %d", id)
		}
		return result.Success(struct{}{}), nil
	})
}

// ClearFavorites removes every favorite.
func (r *Repository) ClearFavorites(ctx context.Context) result.Result[struct{}] {
	return run(ctx, r, "ClearFavorites", func(ctx context.Context) (result.Result[struct{}], error) {
		if err := r.favorites.Clear(ctx); err != nil {
			return result.Result[struct{}]{}, errors.Wrap(err, "clear favorites")
		}
		return result.Success(struct{}{}), nil
	})
}

// GetFavorites returns the stored favorites, all flagged as favorite.
func (r *Repository) GetFavorites(ctx context.Context) productList {
	return run(ctx, r, "GetFavorites", func(ctx context.Context) (productList, error) {
		favorites, err := r.favorites.Products(ctx)
		if err != nil {
			return productList{}, errors.Wrap(err, "read favorites")
		}
		if len(favorites) == 0 {
			return result.Fail[[]product.ProductUI](NoFavoritesMessage), nil
		}
		return result.Success(product.MapFavorites(favorites)), nil
	})
}
