package server

import (
	"net/http"
	"strings"
	"time"

	"pgnest/pkg/types"
)

func (s *Service) handleGetBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = "all"
	}

	s.respondJSON(w, http.StatusOK, types.BookingsResponse{
		Bookings: s.bookingRepo.Bookings(ctx, tab),
		Stats:    s.bookingRepo.Stats(ctx),
		Tab:      tab,
	})
}

func (s *Service) handlePostVisitRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var req types.VisitRequest
	if err := decoder.Decode(&req, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if errs := validateVisitRequest(req); len(errs) > 0 {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", errs)
		return
	}

	listing, err := s.listingRepo.ListingByID(r.Context(), req.PGID)
	if err != nil {
		s.respondNotFound(w, "/api/listings")
		return
	}

	booking := s.bookingRepo.RequestVisit(r.Context(), req, *listing)
	s.respondJSON(w, http.StatusCreated, booking)
}

func validateVisitRequest(req types.VisitRequest) map[string]string {
	errs := map[string]string{}

	if req.PGID == "" {
		errs["pg_id"] = "Select a PG to visit."
	}

	if req.VisitDate == "" {
		errs["visit_date"] = "Pick a visit date."
	} else if _, err := time.Parse("2006-01-02", req.VisitDate); err != nil {
		errs["visit_date"] = "Enter the visit date as YYYY-MM-DD."
	}

	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Full name is required."
	}

	if digitCount(req.Phone) < 10 {
		errs["phone"] = "Enter a valid phone number."
	}

	return errs
}
