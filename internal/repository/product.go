package repository

import (
	"context"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

type productList = result.Result[[]product.ProductUI]

// GetProducts returns the catalog with favorite flags resolved.
func (r *Repository) GetProducts(ctx context.Context) productList {
	return r.listProducts(ctx, "GetProducts", r.remote.GetProducts)
}

// GetSaleProducts returns the products on sale.
func (r *Repository) GetSaleProducts(ctx context.Context) productList {
	return r.listProducts(ctx, "GetSaleProducts", r.remote.GetSaleProducts)
}

// SearchProduct returns the products matching query.
func (r *Repository) SearchProduct(ctx context.Context, query string) productList {
	return r.listProducts(ctx, "SearchProduct", func(ctx context.Context) (*product.ProductsResponse, error) {
		return r.remote.SearchProduct(ctx, query)
	})
}

// GetProductsByCategory returns the products of category.
func (r *Repository) GetProductsByCategory(ctx context.Context, category string) productList {
	return r.listProducts(ctx, "GetProductsByCategory", func(ctx context.Context) (*product.ProductsResponse, error) {
		return r.remote.GetProductsByCategory(ctx, category)
	})
}

// GetProductDetail returns a single product. A successful status without a
// product body is reported as Fail.
func (r *Repository) GetProductDetail(ctx context.Context, id int) result.Result[product.ProductUI] {
	return run(ctx, r, "GetProductDetail", func(ctx context.Context) (result.Result[product.ProductUI], error) {
		var (
			favorites product.IDSet
			resp      *product.ProductDetailResponse
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(guard(func() (err error) {
			favorites, err = r.favorites.ProductIDs(gctx)
			return errors.Wrap(err, "read favorite ids")
		}))
		g.Go(guard(func() (err error) {
			resp, err = r.remote.GetProductDetail(gctx, id)
			return err
		}))
		if err := g.Wait(); err != nil {
			return result.Result[product.ProductUI]{}, err
		}

		if resp == nil {
			return result.Fail[product.ProductUI](""), nil
		}
		if !resp.OK() || resp.Product == nil {
			return result.Fail[product.ProductUI](resp.Message), nil
		}
		return result.Success(resp.Product.ToUI(favorites)), nil
	})
}

// GetCategories returns the category list unchanged.
func (r *Repository) GetCategories(ctx context.Context) result.Result[[]product.Category] {
	return run(ctx, r, "GetCategories", func(ctx context.Context) (result.Result[[]product.Category], error) {
		resp, err := r.remote.GetCategories(ctx)
		if err != nil {
			return result.Result[[]product.Category]{}, err
		}
		if resp == nil {
			return result.Fail[[]product.Category](""), nil
		}
		if !resp.OK() {
			return result.Fail[[]product.Category](resp.Message), nil
		}
		categories := resp.Categories
		if categories == nil {
			categories = []product.Category{}
		}
		return result.Success(categories), nil
	})
}

// listProducts reads the favorite ids and calls fetch concurrently, then maps
// the products of a successful response.
func (r *Repository) listProducts(
	ctx context.Context,
	op string,
	fetch func(ctx context.Context) (*product.ProductsResponse, error),
) productList {
	return run(ctx, r, op, func(ctx context.Context) (productList, error) {
		var (
			favorites product.IDSet
			resp      *product.ProductsResponse
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(guard(func() (err error) {
			favorites, err = r.favorites.ProductIDs(gctx)
			return errors.Wrap(err, "read favorite ids")
		}))
		g.Go(guard(func() (err error) {
			resp, err = fetch(gctx)
			return err
		}))
		if err := g.Wait(); err != nil {
			return productList{}, err
		}

		if resp == nil {
			return result.Fail[[]product.ProductUI](""), nil
		}
		if !resp.OK() {
			return result.Fail[[]product.ProductUI](resp.Message), nil
		}
		return result.Success(product.MapProducts(resp.Products, favorites)), nil
	})
}
