package server

import (
	"net/http"

	"pgnest/pkg/types"
)

// parseCriteria decodes the filter facets and sort key from the query
// string. Unknown sort keys fall back to rating.
func parseCriteria(r *http.Request) (types.FilterCriteria, types.SortKey, error) {
	var criteria types.FilterCriteria
	if err := decoder.Decode(&criteria, r.URL.Query()); err != nil {
		return criteria, "", err
	}

	sortBy := types.SortKey(r.URL.Query().Get("sort"))
	switch sortBy {
	case types.SortRating, types.SortPriceLow, types.SortPriceHigh, types.SortDistance, types.SortNewest:
	default:
		sortBy = types.SortRating
	}

	return criteria, sortBy, nil
}

func (s *Service) handleGetListings(w http.ResponseWriter, r *http.Request) {
	criteria, sortBy, err := parseCriteria(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	listings := s.listingRepo.Search(r.Context(), criteria, sortBy)

	s.respondJSON(w, http.StatusOK, types.ListingsResponse{
		Listings: listings,
		Total:    len(listings),
		Criteria: criteria,
		SortBy:   sortBy,
	})
}

func (s *Service) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	listing, err := s.listingRepo.ListingByID(r.Context(), id)
	if err != nil {
		s.respondNotFound(w, "/api/listings")
		return
	}

	s.respondJSON(w, http.StatusOK, listing)
}
