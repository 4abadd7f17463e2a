package seed

import "pgnest/pkg/types"

// WishlistFolders returns the tenant's folder set. The first folder is
// the permissive "All" view; counts are recomputed by the repository.
func WishlistFolders() []types.WishlistFolder {
	return []types.WishlistFolder{
		{ID: "1", Name: "All", Tag: types.FolderAll},
		{ID: "2", Name: "Near Office", Tag: "nearOffice"},
		{ID: "3", Name: "Budget PGs", Tag: "budget"},
		{ID: "4", Name: "Food Included", Tag: "food"},
	}
}

// WishlistEntries returns the demo tenant's saved PGs.
func WishlistEntries() []types.WishlistEntry {
	return []types.WishlistEntry{
		{
			Listing: types.Listing{
				ID:           "w1",
				Name:         "Green Valley PG",
				Location:     "Kondapur, Hyderabad",
				Price:        7500,
				Rating:       4.5,
				ReviewCount:  82,
				Image:        "/static/images/pg-room-1.jpg",
				Category:     types.CategoryColiving,
				Sharing:      "2, 3 Sharing",
				Amenities:    []string{"wifi", "parking", "security"},
				IsVerified:   true,
				Availability: types.AvailabilityAvailable,
			},
			Tags:    []string{"nearOffice"},
			IsSaved: true,
		},
		{
			Listing: types.Listing{
				ID:           "w2",
				Name:         "Chillax Men's PG",
				Location:     "Hitech City, Hyderabad",
				Price:        6500,
				Rating:       4.3,
				ReviewCount:  54,
				Image:        "/static/images/pg-room-2.jpg",
				Category:     types.CategoryBoys,
				Sharing:      "3, 4 Sharing",
				Amenities:    []string{"wifi", "food"},
				Availability: types.AvailabilityAvailable,
			},
			Tags:    []string{"budget", "food"},
			IsSaved: true,
		},
		{
			Listing: types.Listing{
				ID:           "w3",
				Name:         "Happy Residency",
				Location:     "Gachibowli, Hyderabad",
				Price:        9500,
				Rating:       4.8,
				ReviewCount:  95,
				Image:        "/static/images/pg-room-3.jpg",
				Category:     types.CategoryColiving,
				Sharing:      "1, 2 Sharing",
				Amenities:    []string{"wifi", "food", "parking"},
				IsVerified:   true,
				Availability: types.AvailabilityLimited,
			},
			Tags:    []string{"nearOffice", "food"},
			IsSaved: true,
		},
		{
			Listing: types.Listing{
				ID:           "w4",
				Name:         "Sunrise Men's PG",
				Location:     "Madhapur, Hyderabad",
				Price:        8000,
				Rating:       4.6,
				ReviewCount:  128,
				Image:        "/static/images/pg-common-area.jpg",
				Category:     types.CategoryBoys,
				Sharing:      "2, 3 Sharing",
				Amenities:    []string{"wifi", "food", "parking", "security"},
				IsVerified:   true,
				IsTrending:   true,
				Availability: types.AvailabilityAvailable,
			},
			Tags:    []string{"nearOffice", "budget"},
			IsSaved: true,
		},
	}
}
