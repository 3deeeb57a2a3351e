// Package memory implements an in-process favorites store. It keeps nothing
// across restarts and is meant for tests and runs without a database.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/xenking/shopfront/internal/domain/product"
)

var _ product.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore is a mutex-guarded favorites table keyed by product ID.
type FavoriteStore struct {
	mu    sync.RWMutex
	byID  map[int]product.Favorite
	order []int
}

// NewFavoriteStore returns an empty store.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{byID: make(map[int]product.Favorite)}
}

// ProductIDs returns a snapshot of the stored identifiers.
func (s *FavoriteStore) ProductIDs(_ context.Context) (product.IDSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(product.IDSet, len(s.byID))
	for id := range s.byID {
		set[id] = struct{}{}
	}
	return set, nil
}

// Products returns the stored favorites in insertion order.
func (s *FavoriteStore) Products(_ context.Context) ([]product.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]product.Favorite, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// Add stores f. An existing record with the same ID is replaced in place.
func (s *FavoriteStore) Add(_ context.Context, f product.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[f.ID]; !ok {
		s.order = append(s.order, f.ID)
	}
	s.byID[f.ID] = f
	return nil
}

// Delete removes the record with the given ID, if any.
func (s *FavoriteStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return nil
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v int) bool { return v == id })
	return nil
}

// Clear removes every record.
func (s *FavoriteStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.byID)
	s.order = s.order[:0]
	return nil
}
