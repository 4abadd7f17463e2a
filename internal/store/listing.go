// Package store holds the dashboard repositories. State lives in
// memory, seeded with the demo tenant's data; the document and profile
// repositories additionally persist through the local JSON store.
package store

import (
	"context"

	"pgnest/internal/engine"
	"pgnest/pkg/types"
)

type ListingRepository struct {
	catalog []types.Listing
}

func NewListingRepository(catalog []types.Listing) *ListingRepository {
	return &ListingRepository{catalog: catalog}
}

// Listings returns the full catalog in seed order.
func (r *ListingRepository) Listings(ctx context.Context) []types.Listing {
	out := make([]types.Listing, len(r.catalog))
	copy(out, r.catalog)
	return out
}

func (r *ListingRepository) ListingByID(ctx context.Context, id string) (*types.Listing, error) {
	for _, l := range r.catalog {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, types.ErrListingNotFound
}

// Search runs the filter pipeline and then the requested sort over the
// catalog.
func (r *ListingRepository) Search(ctx context.Context, c types.FilterCriteria, sortBy types.SortKey) []types.Listing {
	return engine.ApplySort(engine.ApplyFilters(r.catalog, c), sortBy)
}
