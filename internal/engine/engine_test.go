package engine

import (
	"testing"

	"pgnest/internal/utils"
	"pgnest/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []types.Listing {
	return []types.Listing{
		{
			ID: "1", Name: "City View PG", Location: "Madhapur, Hyderabad",
			Price: 8000, Rating: 4.7, Category: types.CategoryBoys,
			Sharing: "2, 3, 4 Sharing", Distance: "1.2 km",
			Amenities: []string{"wifi", "food", "parking", "security"},
		},
		{
			ID: "2", Name: "Happy Residency", Location: "Gachibowli, Hyderabad",
			Price: 9500, Rating: 4.8, Category: types.CategoryColiving,
			Sharing: "1, 2 Sharing", Distance: "2.1 km",
			Amenities: []string{"wifi", "food", "parking"},
		},
		{
			ID: "3", Name: "Vibrant Stays", Location: "Hitech City, Hyderabad",
			Price: 7500, Rating: 4.5, Category: types.CategoryGirls,
			Sharing: "2, 3 Sharing", Distance: "0.8 km",
			Amenities: []string{"wifi", "food", "security"},
		},
		{
			ID: "4", Name: "Sunrise Men's PG", Location: "Madhapur, Hyderabad",
			Price: 6500, Rating: 4.3, Category: types.CategoryBoys,
			Sharing: "3, 4 Sharing", Distance: "2.0 km",
			Amenities: []string{"wifi", "food"},
		},
	}
}

func listingIDs(listings []types.Listing) []string {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestApplyFiltersEmptyCriteriaKeepsEverything(t *testing.T) {
	catalog := testCatalog()
	got := ApplyFilters(catalog, types.FilterCriteria{})
	assert.Equal(t, listingIDs(catalog), listingIDs(got))
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	catalog := testCatalog()
	criteria := types.FilterCriteria{
		Query:     "hyderabad",
		PriceMin:  utils.IntPtr(7000),
		PriceMax:  utils.IntPtr(9500),
		Amenities: []string{"wifi"},
	}

	once := ApplyFilters(catalog, criteria)
	twice := ApplyFilters(once, criteria)
	assert.Equal(t, once, twice)
}

func TestApplyFiltersDoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	want := listingIDs(catalog)

	ApplyFilters(catalog, types.FilterCriteria{Query: "city"})
	assert.Equal(t, want, listingIDs(catalog))
}

func TestApplyFiltersQueryMatchesAmenity(t *testing.T) {
	catalog := []types.Listing{
		{ID: "1", Name: "City View PG", Amenities: []string{"wifi", "food"}},
		{ID: "2", Name: "Quiet Corner", Amenities: []string{"parking"}},
	}

	got := ApplyFilters(catalog, types.FilterCriteria{Query: "food"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApplyFiltersCategoryORVersusAmenityAND(t *testing.T) {
	catalog := []types.Listing{
		{ID: "a", Category: types.CategoryBoys, Amenities: []string{"wifi"}},
		{ID: "b", Category: types.CategoryGirls, Amenities: []string{"wifi", "food"}},
	}

	byCategory := ApplyFilters(catalog, types.FilterCriteria{
		Categories: []string{"boys", "girls"},
	})
	assert.Equal(t, []string{"a", "b"}, listingIDs(byCategory))

	byAmenities := ApplyFilters(catalog, types.FilterCriteria{
		Amenities: []string{"wifi", "food"},
	})
	assert.Equal(t, []string{"b"}, listingIDs(byAmenities))
}

func TestApplyFiltersSharingSizeWholeNumberMatch(t *testing.T) {
	catalog := []types.Listing{
		{ID: "twelve", Sharing: "12 Sharing"},
		{ID: "one-two", Sharing: "1, 2 Sharing"},
	}

	got := ApplyFilters(catalog, types.FilterCriteria{SharingSizes: []string{"1"}})
	assert.Equal(t, []string{"one-two"}, listingIDs(got))
}

func TestApplyFiltersPriceRange(t *testing.T) {
	catalog := testCatalog()

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := ApplyFilters(catalog, types.FilterCriteria{
			PriceMin: utils.IntPtr(7500),
			PriceMax: utils.IntPtr(9500),
		})
		assert.Equal(t, []string{"1", "2", "3"}, listingIDs(got))
	})

	t.Run("nil bound is unconstrained", func(t *testing.T) {
		got := ApplyFilters(catalog, types.FilterCriteria{PriceMin: utils.IntPtr(9000)})
		assert.Equal(t, []string{"2"}, listingIDs(got))
	})

	t.Run("min above max yields empty", func(t *testing.T) {
		got := ApplyFilters(catalog, types.FilterCriteria{
			PriceMin: utils.IntPtr(10000),
			PriceMax: utils.IntPtr(5000),
		})
		assert.Empty(t, got)
	})
}

func TestApplyFiltersEmptyCatalog(t *testing.T) {
	got := ApplyFilters(nil, types.FilterCriteria{Query: "anything"})
	assert.Empty(t, got)
}

func TestApplyWishlistFiltersFolder(t *testing.T) {
	entries := []types.WishlistEntry{
		{Listing: types.Listing{ID: "1"}, Tags: []string{"nearOffice"}},
		{Listing: types.Listing{ID: "2"}, Tags: []string{"budget"}},
		{Listing: types.Listing{ID: "3"}, Tags: []string{"nearOffice", "food"}},
		{Listing: types.Listing{ID: "4"}, Tags: []string{"food"}},
	}

	got := ApplyWishlistFilters(entries, types.FilterCriteria{Folder: "nearOffice"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	all := ApplyWishlistFilters(entries, types.FilterCriteria{Folder: types.FolderAll})
	assert.Len(t, all, 4)
}

func TestApplySortPrice(t *testing.T) {
	catalog := []types.Listing{
		{ID: "1", Price: 8000},
		{ID: "2", Price: 6500},
		{ID: "3", Price: 9500},
	}

	asc := ApplySort(catalog, types.SortPriceLow)
	assert.Equal(t, []string{"2", "1", "3"}, listingIDs(asc))

	desc := ApplySort(catalog, types.SortPriceHigh)
	assert.Equal(t, []string{"3", "1", "2"}, listingIDs(desc))

	// input untouched
	assert.Equal(t, []string{"1", "2", "3"}, listingIDs(catalog))
}

func TestApplySortIsStable(t *testing.T) {
	catalog := []types.Listing{
		{ID: "first", Price: 7500, Rating: 4.5, Distance: "1.0 km"},
		{ID: "second", Price: 7500, Rating: 4.5, Distance: "1.0 km"},
		{ID: "cheap", Price: 6000, Rating: 4.9, Distance: "0.5 km"},
	}

	for _, key := range []types.SortKey{
		types.SortRating, types.SortPriceLow, types.SortPriceHigh,
		types.SortDistance, types.SortNewest,
	} {
		got := ApplySort(catalog, key)
		firstIdx, secondIdx := -1, -1
		for i, l := range got {
			switch l.ID {
			case "first":
				firstIdx = i
			case "second":
				secondIdx = i
			}
		}
		assert.Less(t, firstIdx, secondIdx, "key %s must keep tied items in input order", key)
	}
}

func TestApplySortRatingDescending(t *testing.T) {
	got := ApplySort(testCatalog(), types.SortRating)
	assert.Equal(t, []string{"2", "1", "3", "4"}, listingIDs(got))
}

func TestApplySortDistanceUnparseableSortLast(t *testing.T) {
	catalog := []types.Listing{
		{ID: "no-distance"},
		{ID: "far", Distance: "2.1 km"},
		{ID: "also-none", Distance: "nearby"},
		{ID: "close", Distance: "0.8 km"},
	}

	got := ApplySort(catalog, types.SortDistance)
	assert.Equal(t, []string{"close", "far", "no-distance", "also-none"}, listingIDs(got))
}

// Newest sort is identity: listings have no created-date field, so the
// input order is preserved rather than inventing a synthetic timestamp.
func TestApplySortNewestIsIdentity(t *testing.T) {
	catalog := testCatalog()
	got := ApplySort(catalog, types.SortNewest)
	assert.Equal(t, listingIDs(catalog), listingIDs(got))
}
