package server

import (
	"errors"
	"net/http"

	"pgnest/pkg/types"
)

func (s *Service) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	criteria, _, err := parseCriteria(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	entries, folders, compare := s.wishlistRepo.Entries(r.Context(), criteria)

	folder := criteria.Folder
	if folder == "" {
		folder = types.FolderAll
	}

	s.respondJSON(w, http.StatusOK, types.WishlistResponse{
		Entries: entries,
		Folders: folders,
		Folder:  folder,
		Compare: compare,
	})
}

func (s *Service) handlePostWishlistSave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	listing, err := s.listingRepo.ListingByID(r.Context(), id)
	if err != nil {
		s.respondNotFound(w, "/api/listings")
		return
	}

	s.wishlistRepo.Save(r.Context(), *listing)
	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "saved to wishlist"})
}

func (s *Service) handlePostWishlistUnsave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.wishlistRepo.Unsave(r.Context(), id); err != nil {
		s.respondNotFound(w, "/api/wishlist")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "removed from wishlist"})
}

func (s *Service) handlePostWishlistTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tag := r.PostFormValue("tag")
	if tag == "" || tag == types.FolderAll {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", map[string]string{
			"tag": "Pick a folder to file this PG under.",
		})
		return
	}

	if err := s.wishlistRepo.ToggleTag(r.Context(), id, tag); err != nil {
		s.respondNotFound(w, "/api/wishlist")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "folder updated"})
}

func (s *Service) handlePostWishlistCompare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	compare, err := s.wishlistRepo.ToggleCompare(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrWishlistEntryMissing) {
			s.respondNotFound(w, "/api/wishlist")
			return
		}
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"compare": compare})
}
