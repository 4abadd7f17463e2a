package server

import (
	"net/http"
	"strconv"
	"strings"

	"pgnest/pkg/types"
)

const minReviewCommentLen = 10

func (s *Service) handleGetReviews(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, types.ReviewsResponse{
		Reviews: s.reviewRepo.Reviews(r.Context()),
	})
}

func (s *Service) handlePostReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var req types.ReviewRequest
	if err := decoder.Decode(&req, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	req.Categories = parseCategoryRatings(r)

	if errs := validateReviewInput(req); len(errs) > 0 {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", errs)
		return
	}

	listing, err := s.listingRepo.ListingByID(r.Context(), req.PGID)
	if err != nil {
		s.respondNotFound(w, "/api/listings")
		return
	}

	review := s.reviewRepo.Submit(r.Context(), req, *listing)
	s.respondJSON(w, http.StatusCreated, review)
}

// parseCategoryRatings reads the optional aspect scores from fields
// named cat_<label>, e.g. cat_Cleanliness=5.
func parseCategoryRatings(r *http.Request) map[string]int {
	out := make(map[string]int)
	for _, label := range types.ReviewCategoryLabels {
		raw := r.PostFormValue("cat_" + label)
		if raw == "" {
			continue
		}
		score, err := strconv.Atoi(raw)
		if err != nil || score < 1 || score > 5 {
			continue
		}
		out[label] = score
	}
	return out
}

func validateReviewInput(req types.ReviewRequest) map[string]string {
	errs := map[string]string{}

	if req.PGID == "" {
		errs["pg_id"] = "Select the PG you are reviewing."
	}
	if req.Rating < 1 || req.Rating > 5 {
		errs["rating"] = "Give a star rating between 1 and 5."
	}
	if len(strings.TrimSpace(req.Comment)) < minReviewCommentLen {
		errs["comment"] = "Write at least a short sentence about your stay."
	}

	return errs
}

func (s *Service) handlePostReviewHelpful(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	helpful, err := s.reviewRepo.MarkHelpful(r.Context(), id)
	if err != nil {
		s.respondNotFound(w, "/api/reviews")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]int{"helpful": helpful})
}

func (s *Service) handlePostReviewDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.reviewRepo.Delete(r.Context(), id); err != nil {
		s.respondNotFound(w, "/api/reviews")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "review deleted"})
}
