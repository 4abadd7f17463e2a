package server

import (
	"net/http"

	"pgnest/pkg/types"
)

func (s *Service) handleGetPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s.respondJSON(w, http.StatusOK, types.PaymentsResponse{
		History:     s.paymentRepo.History(ctx),
		PendingDues: s.paymentRepo.PendingDues(ctx),
		Stats:       s.paymentRepo.Stats(ctx),
	})
}

func (s *Service) handlePostPayDue(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payment, err := s.paymentRepo.Pay(r.Context(), id)
	if err != nil {
		s.respondNotFound(w, "/api/payments")
		return
	}

	s.respondJSON(w, http.StatusOK, payment)
}
