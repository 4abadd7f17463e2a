package seed

import "pgnest/pkg/types"

// Reviews returns the demo tenant's published reviews.
func Reviews() []types.Review {
	return []types.Review{
		{
			ID:      "r1",
			PGID:    "9",
			PGName:  "Green Valley PG",
			Rating:  5,
			Date:    "Jan 15, 2026",
			Comment: "Excellent PG! Clean rooms, great food, and cooperative staff.",
			Helpful: 15,
			Categories: map[string]int{
				"Cleanliness":     5,
				"Food Quality":    5,
				"Wi-Fi Speed":     4,
				"Safety":          5,
				"Value for Money": 5,
			},
			Photos: []string{},
		},
	}
}
