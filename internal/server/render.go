package server

import (
	"encoding/json"
	"net/http"

	"pgnest/pkg/types"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, types.ErrorResponse{Error: msg})
}

func (s *Service) respondFieldErrors(w http.ResponseWriter, msg string, fieldErrs map[string]string) {
	s.respondJSON(w, http.StatusBadRequest, types.ErrorResponse{
		Error:       msg,
		FieldErrors: fieldErrs,
	})
}

// respondNotFound renders the "no data found" state with a path the
// client can navigate back to.
func (s *Service) respondNotFound(w http.ResponseWriter, backTo string) {
	s.respondJSON(w, http.StatusNotFound, types.ErrorResponse{
		Error:  "no data found",
		BackTo: backTo,
	})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.respondError(w, http.StatusInternalServerError, "something went wrong")
}
