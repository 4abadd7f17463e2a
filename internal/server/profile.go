package server

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"pgnest/pkg/types"
)

func (s *Service) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	committed, mode, draft := s.profileRepo.Profile(ctx)

	s.respondJSON(w, http.StatusOK, types.ProfileResponse{
		Mode:         mode,
		Profile:      committed,
		Draft:        draft,
		Verification: s.profileRepo.Verification(ctx),
	})
}

func (s *Service) handlePostProfileEdit(w http.ResponseWriter, r *http.Request) {
	draft := s.profileRepo.Edit(r.Context())
	s.respondJSON(w, http.StatusOK, types.ProfileResponse{
		Mode:    types.EditModeEditing,
		Profile: draft,
		Draft:   &draft,
	})
}

func (s *Service) handlePostProfileDraft(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var profile types.Profile
	if err := decoder.Decode(&profile, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if errs := validateProfileInput(profile); len(errs) > 0 {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", errs)
		return
	}

	if err := s.profileRepo.UpdateDraft(r.Context(), profile); err != nil {
		if errors.Is(err, types.ErrNotEditing) {
			s.respondError(w, http.StatusConflict, err.Error())
			return
		}
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "draft updated"})
}

func (s *Service) handlePostProfileSave(w http.ResponseWriter, r *http.Request) {
	saved, err := s.profileRepo.Save(r.Context())
	if err != nil {
		if errors.Is(err, types.ErrNotEditing) {
			s.respondError(w, http.StatusConflict, err.Error())
			return
		}
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, types.ProfileResponse{
		Mode:    types.EditModeViewing,
		Profile: saved,
	})
}

func (s *Service) handlePostProfileCancel(w http.ResponseWriter, r *http.Request) {
	s.profileRepo.Cancel(r.Context())
	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "edit cancelled"})
}

func validateProfileInput(p types.Profile) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(p.FirstName) == "" {
		errs["first_name"] = "First name is required."
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs["last_name"] = "Last name is required."
	}

	email := strings.TrimSpace(p.Email)
	if email == "" {
		errs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Enter a valid email address."
	}

	if digitCount(p.Phone) < 10 {
		errs["phone"] = "Enter a valid phone number."
	}

	return errs
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
