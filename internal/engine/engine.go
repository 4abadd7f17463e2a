// Package engine implements the filter/sort pipeline shared by the
// listings, search, and wishlist pages. Every function is pure: inputs
// are never mutated and results are always fresh slices.
package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"pgnest/pkg/types"
)

// ApplyFilters returns the subsequence of catalog satisfying every
// active facet of c, preserving the catalog's relative order. An empty
// facet places no constraint; a price range with min > max simply
// matches nothing.
func ApplyFilters(catalog []types.Listing, c types.FilterCriteria) []types.Listing {
	out := make([]types.Listing, 0, len(catalog))
	for _, l := range catalog {
		if Matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// ApplyWishlistFilters filters saved entries: the folder constraint
// first, then the same listing match as ApplyFilters.
func ApplyWishlistFilters(entries []types.WishlistEntry, c types.FilterCriteria) []types.WishlistEntry {
	out := make([]types.WishlistEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesFolder(e, c.Folder) {
			continue
		}
		if Matches(e.Listing, c) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single listing satisfies all facets of c.
// Facets combine with AND; the free-text query matches with OR across
// name, location, category, sharing description, and amenity tags.
func Matches(l types.Listing, c types.FilterCriteria) bool {
	if !matchesQuery(l, c.Query) {
		return false
	}
	if c.PriceMin != nil && l.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && l.Price > *c.PriceMax {
		return false
	}
	if len(c.Categories) > 0 && !containsString(c.Categories, string(l.Category)) {
		return false
	}
	if len(c.SharingSizes) > 0 && !matchesSharing(l.Sharing, c.SharingSizes) {
		return false
	}
	// Amenities are AND-within-facet: the PG must support every
	// selected amenity, unlike categories/sharing which are any-of.
	for _, a := range c.Amenities {
		if !containsFold(l.Amenities, a) {
			return false
		}
	}
	return true
}

func matchesQuery(l types.Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Location), q) ||
		strings.Contains(strings.ToLower(string(l.Category)), q) ||
		strings.Contains(strings.ToLower(l.Sharing), q) {
		return true
	}
	for _, a := range l.Amenities {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

var sharingSizeRe = regexp.MustCompile(`\d+`)

// matchesSharing matches selected size tokens against the whole numbers
// in a sharing description like "2, 3, 4 Sharing". Whole-number match
// only: "12 Sharing" never matches a selection of "1".
func matchesSharing(sharing string, sizes []string) bool {
	found := sharingSizeRe.FindAllString(sharing, -1)
	for _, want := range sizes {
		for _, got := range found {
			if got == want {
				return true
			}
		}
	}
	return false
}

func matchesFolder(e types.WishlistEntry, folder string) bool {
	if folder == "" || folder == types.FolderAll {
		return true
	}
	return containsString(e.Tags, folder)
}

// ApplySort returns a stably sorted copy of seq; ties keep their input
// order for every key. The input slice is left untouched.
func ApplySort(seq []types.Listing, key types.SortKey) []types.Listing {
	sorted := make([]types.Listing, len(seq))
	copy(sorted, seq)

	switch key {
	case types.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case types.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case types.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case types.SortDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			di, iok := parseDistance(sorted[i].Distance)
			dj, jok := parseDistance(sorted[j].Distance)
			if iok && jok {
				return di < dj
			}
			// Items without a parseable distance sort after all
			// parseable ones.
			return iok && !jok
		})
	case types.SortNewest:
		// Listings carry no created date, so "newest" is an identity
		// sort. Kept deliberately; see the tests.
	}

	return sorted
}

// parseDistance turns "1.2 km" into 1.2.
func parseDistance(d string) (float64, bool) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(d), "km"))
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
