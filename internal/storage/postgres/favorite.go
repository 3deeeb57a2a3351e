package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/shopfront/internal/domain/product"
)

const (
	listFavoriteIDsSQL = `SELECT id FROM favorites`

	listFavoritesSQL = `SELECT id, title, price, sale_price, description, category,
		image_one, image_two, image_three, rate, count, sale_state
		FROM favorites ORDER BY added_at, id`

	// Re-adding a favorite refreshes the stored copy but keeps its position.
	upsertFavoriteSQL = `INSERT INTO favorites (id, title, price, sale_price, description, category,
		image_one, image_two, image_three, rate, count, sale_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			price = EXCLUDED.price,
			sale_price = EXCLUDED.sale_price,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			image_one = EXCLUDED.image_one,
			image_two = EXCLUDED.image_two,
			image_three = EXCLUDED.image_three,
			rate = EXCLUDED.rate,
			count = EXCLUDED.count,
			sale_state = EXCLUDED.sale_state`

	deleteFavoriteSQL = `DELETE FROM favorites WHERE id = $1`

	clearFavoritesSQL = `DELETE FROM favorites`
)

var _ product.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore implements product.FavoriteStore backed by PostgreSQL.
type FavoriteStore struct {
	pool *pgxpool.Pool
}

// NewFavoriteStore returns a FavoriteStore that uses the given pool.
func NewFavoriteStore(pool *pgxpool.Pool) *FavoriteStore {
	return &FavoriteStore{pool: pool}
}

// ProductIDs returns the identifiers of all favorited products.
func (s *FavoriteStore) ProductIDs(ctx context.Context) (product.IDSet, error) {
	rows, err := s.pool.Query(ctx, listFavoriteIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing favorite ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("listing favorite ids: %w", err)
	}

	set := make(product.IDSet, len(ids))
	for _, id := range ids {
		set[int(id)] = struct{}{}
	}
	return set, nil
}

// Products returns all stored favorites in the order they were added.
func (s *FavoriteStore) Products(ctx context.Context) ([]product.Favorite, error) {
	rows, err := s.pool.Query(ctx, listFavoritesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	favorites, err := pgx.CollectRows(rows, scanFavorite)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return favorites, nil
}

// Add stores f, replacing any record with the same ID.
func (s *FavoriteStore) Add(ctx context.Context, f product.Favorite) error {
	_, err := s.pool.Exec(ctx, upsertFavoriteSQL,
		int32(f.ID), f.Title, f.Price, f.SalePrice, f.Description, f.Category,
		f.ImageOne, f.ImageTwo, f.ImageThree, f.Rate, int32(f.Count), f.SaleState,
	)
	if err != nil {
		return fmt.Errorf("adding favorite %d: %w", f.ID, err)
	}
	return nil
}

// Delete removes the favorite with the given ID. Deleting a missing record is
// not an error.
func (s *FavoriteStore) Delete(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, deleteFavoriteSQL, int32(id)); err != nil {
		return fmt.Errorf("deleting favorite %d: %w", id, err)
	}
	return nil
}

// Clear removes every favorite.
func (s *FavoriteStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, clearFavoritesSQL); err != nil {
		return fmt.Errorf("clearing favorites: %w", err)
	}
	return nil
}

// Ping verifies the database is reachable.
func (s *FavoriteStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func scanFavorite(row pgx.CollectableRow) (product.Favorite, error) {
	var (
		f     product.Favorite
		id    int32
		count int32
	)
	err := row.Scan(
		&id, &f.Title, &f.Price, &f.SalePrice, &f.Description, &f.Category,
		&f.ImageOne, &f.ImageTwo, &f.ImageThree, &f.Rate, &count, &f.SaleState,
	)
	f.ID = int(id)
	f.Count = int(count)
	return f, err
}
