package seed

import "pgnest/pkg/types"

// Bookings returns the demo tenant's visit and booking history.
func Bookings() []types.Booking {
	return []types.Booking{
		{
			ID:       "1",
			PGName:   "Green Valley PG",
			Location: "Kondapur, Hyderabad",
			Image:    "/static/images/pg-room-1.jpg",
			Kind:     types.BookingKindVisit,
			Date:     "Jan 25, 2026",
			Time:     "10:00 AM",
			Status:   types.BookingStatusApproved,
		},
		{
			ID:       "2",
			PGName:   "Happy Residency",
			Location: "Gachibowli, Hyderabad",
			Image:    "/static/images/pg-room-2.jpg",
			Kind:     types.BookingKindBooking,
			Date:     "Jan 28, 2026",
			Time:     "2:00 PM",
			Status:   types.BookingStatusPending,
		},
		{
			ID:       "3",
			PGName:   "Sunrise Men's PG",
			Location: "Madhapur, Hyderabad",
			Image:    "/static/images/pg-room-3.jpg",
			Kind:     types.BookingKindVisit,
			Date:     "Jan 20, 2026",
			Time:     "11:00 AM",
			Status:   types.BookingStatusCompleted,
		},
	}
}
