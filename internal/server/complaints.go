package server

import (
	"context"
	"net/http"
	"strings"

	"pgnest/pkg/types"
)

func (s *Service) handleGetComplaints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = "active"
	}

	s.respondJSON(w, http.StatusOK, types.ComplaintsResponse{
		Active:      s.complaintRepo.Active(ctx),
		Resolved:    s.complaintRepo.Resolved(ctx),
		Stats:       s.complaintRepo.Stats(ctx),
		Maintenance: s.complaintRepo.Maintenance(ctx),
		Tab:         tab,
	})
}

func (s *Service) handlePostComplaint(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var req types.ComplaintRequest
	if err := decoder.Decode(&req, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if errs := s.validateComplaintRequest(r.Context(), req); len(errs) > 0 {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", errs)
		return
	}

	complaint := s.complaintRepo.Raise(r.Context(), req)
	s.respondJSON(w, http.StatusCreated, complaint)
}

func (s *Service) validateComplaintRequest(ctx context.Context, req types.ComplaintRequest) map[string]string {
	errs := map[string]string{}

	categories := s.complaintRepo.Categories(ctx)

	if req.Category == "" {
		errs["category"] = "Select a complaint category."
	} else if _, ok := categories[req.Category]; !ok {
		errs["category"] = "Unknown complaint category."
	}

	if req.SubCategory == "" {
		errs["sub_category"] = "Select a sub-category."
	} else if req.Category != "" && !s.complaintRepo.ValidSubCategory(req.Category, req.SubCategory) {
		errs["sub_category"] = "Sub-category does not belong to the selected category."
	}

	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Describe the issue."
	}

	return errs
}
