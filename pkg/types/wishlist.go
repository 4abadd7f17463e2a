package types

// WishlistEntry is a saved listing plus the folder tags the tenant has
// filed it under.
type WishlistEntry struct {
	Listing
	Tags    []string `json:"tags"`
	IsSaved bool     `json:"isSaved"`
}

// WishlistFolder is a named grouping of saved listings. Tag is the
// value stored on entries; Count is derived at read time.
type WishlistFolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
