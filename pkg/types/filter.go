package types

type SortKey string

const (
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDistance  SortKey = "distance"
	SortNewest    SortKey = "newest"
)

// FolderAll is the wishlist folder that matches every saved entry.
const FolderAll = "All"

// FilterCriteria carries the active facets of a listing search. A zero
// value matches everything: empty facets place no constraint, and nil
// price bounds leave that side of the range open.
type FilterCriteria struct {
	Query        string   `form:"q"`
	PriceMin     *int     `form:"price_min"`
	PriceMax     *int     `form:"price_max"`
	Categories   []string `form:"type"`
	SharingSizes []string `form:"sharing"`
	Amenities    []string `form:"amenity"`
	Folder       string   `form:"folder"`
}

// HasConstraints reports whether any facet besides the folder is
// active.
func (c FilterCriteria) HasConstraints() bool {
	return c.Query != "" ||
		c.PriceMin != nil ||
		c.PriceMax != nil ||
		len(c.Categories) > 0 ||
		len(c.SharingSizes) > 0 ||
		len(c.Amenities) > 0
}
