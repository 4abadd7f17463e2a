package store

import (
	"context"
	"sync"

	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

type BookingRepository struct {
	mu       sync.Mutex
	bookings []types.Booking
}

func NewBookingRepository(seeded []types.Booking) *BookingRepository {
	return &BookingRepository{bookings: seeded}
}

// Bookings returns the tenant's visits and bookings, optionally
// narrowed to a status tab ("all", "pending", "approved", "completed").
func (r *BookingRepository) Bookings(ctx context.Context, tab string) []types.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if tab == "" || tab == "all" || string(b.Status) == tab {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepository) Stats(ctx context.Context) types.BookingStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := types.BookingStats{TotalVisits: len(r.bookings)}
	for _, b := range r.bookings {
		switch b.Status {
		case types.BookingStatusPending:
			stats.Pending++
		case types.BookingStatusApproved:
			stats.Approved++
		case types.BookingStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// RequestVisit records a new visit request in pending state. pgName
// and location come from the chosen listing.
func (r *BookingRepository) RequestVisit(ctx context.Context, req types.VisitRequest, l types.Listing) *types.Booking {
	visitTime := req.VisitTime
	if visitTime == "" {
		visitTime = "10:00 AM"
	}

	booking := types.Booking{
		ID:       utils.NanoIDSize(12),
		PGName:   l.Name,
		Location: l.Location,
		Image:    l.Image,
		Kind:     types.BookingKindVisit,
		Date:     req.VisitDate,
		Time:     visitTime,
		Status:   types.BookingStatusPending,
	}

	r.mu.Lock()
	r.bookings = append([]types.Booking{booking}, r.bookings...)
	r.mu.Unlock()

	return &booking
}
