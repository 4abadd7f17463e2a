// Package seed holds the demo tenant's starting data. Every slice is
// returned as a fresh copy so callers can mutate freely.
package seed

import (
	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

// Listings is the PG catalog shown on the listings and search pages.
func Listings() []types.Listing {
	return []types.Listing{
		{
			ID:           "1",
			Name:         "City View PG",
			Location:     "Madhapur, Hyderabad",
			Price:        8000,
			Rating:       4.7,
			ReviewCount:  128,
			Image:        "/static/images/pg-room-1.jpg",
			Category:     types.CategoryBoys,
			Sharing:      "2, 3, 4 Sharing",
			Distance:     "1.2 km",
			Amenities:    []string{"wifi", "food", "parking", "security"},
			IsVerified:   true,
			IsTrending:   true,
			Availability: types.AvailabilityAvailable,
			Lat:          utils.Float64Ptr(17.4486),
			Lng:          utils.Float64Ptr(78.3908),
		},
		{
			ID:           "2",
			Name:         "Happy Residency",
			Location:     "Gachibowli, Hyderabad",
			Price:        9500,
			Rating:       4.8,
			ReviewCount:  95,
			Image:        "/static/images/pg-room-2.jpg",
			Category:     types.CategoryColiving,
			Sharing:      "1, 2 Sharing",
			Distance:     "2.1 km",
			Amenities:    []string{"wifi", "food", "parking"},
			IsVerified:   true,
			Availability: types.AvailabilityLimited,
			Lat:          utils.Float64Ptr(17.4401),
			Lng:          utils.Float64Ptr(78.3489),
		},
		{
			ID:           "3",
			Name:         "Vibrant Stays",
			Location:     "Hitech City, Hyderabad",
			Price:        7500,
			Rating:       4.5,
			ReviewCount:  67,
			Image:        "/static/images/pg-room-3.jpg",
			Category:     types.CategoryGirls,
			Sharing:      "2, 3 Sharing",
			Distance:     "0.8 km",
			Amenities:    []string{"wifi", "food", "security"},
			IsNew:        true,
			Availability: types.AvailabilityAvailable,
			Lat:          utils.Float64Ptr(17.4435),
			Lng:          utils.Float64Ptr(78.3772),
		},
		{
			ID:           "4",
			Name:         "Green Valley PG",
			Location:     "Kondapur, Hyderabad",
			Price:        7500,
			Rating:       4.5,
			ReviewCount:  82,
			Image:        "/static/images/pg-common-area.jpg",
			Category:     types.CategoryColiving,
			Sharing:      "2, 3 Sharing",
			Distance:     "1.5 km",
			Amenities:    []string{"wifi", "parking", "security"},
			IsVerified:   true,
			Availability: types.AvailabilityAvailable,
			Lat:          utils.Float64Ptr(17.4623),
			Lng:          utils.Float64Ptr(78.3652),
		},
		{
			ID:           "5",
			Name:         "Sunrise Men's PG",
			Location:     "Madhapur, Hyderabad",
			Price:        6500,
			Rating:       4.3,
			ReviewCount:  54,
			Image:        "/static/images/pg-exterior.jpg",
			Category:     types.CategoryBoys,
			Sharing:      "3, 4 Sharing",
			Distance:     "2.0 km",
			Amenities:    []string{"wifi", "food"},
			Availability: types.AvailabilityAvailable,
			Lat:          utils.Float64Ptr(17.4525),
			Lng:          utils.Float64Ptr(78.3942),
		},
		{
			ID:           "6",
			Name:         "Comfort Stay PG",
			Location:     "Hitech City, Hyderabad",
			Price:        8500,
			Rating:       4.6,
			ReviewCount:  73,
			Image:        "/static/images/pg-dining.jpg",
			Category:     types.CategoryGirls,
			Sharing:      "1, 2 Sharing",
			Distance:     "1.0 km",
			Amenities:    []string{"wifi", "food", "parking", "security"},
			IsVerified:   true,
			Availability: types.AvailabilityLimited,
			Lat:          utils.Float64Ptr(17.4478),
			Lng:          utils.Float64Ptr(78.3812),
		},
	}
}

// ListingCategories feeds the category filter control.
func ListingCategories() []types.ListingCategory {
	return []types.ListingCategory{
		types.CategoryBoys,
		types.CategoryGirls,
		types.CategoryColiving,
		types.CategoryFamily,
		types.CategoryShort,
	}
}

// SharingSizes feeds the sharing filter control.
func SharingSizes() []string {
	return []string{"1", "2", "3", "4"}
}
