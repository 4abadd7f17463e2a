package server

import (
	"net/http"

	"pgnest/pkg/types"
)

func (s *Service) settingsResponse(r *http.Request) types.SettingsResponse {
	resp := types.SettingsResponse{
		Settings: s.profileRepo.Settings(r.Context()),
	}
	if token := s.profileRepo.SettingsPhotoToken(r.Context()); token != "" {
		resp.PhotoURL = "/api/settings/photo?token=" + token
	}
	return resp
}

func (s *Service) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.settingsResponse(r))
}

func (s *Service) handlePostSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var settings types.Settings
	if err := decoder.Decode(&settings, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	s.profileRepo.UpdateSettings(r.Context(), settings)
	s.respondJSON(w, http.StatusOK, s.settingsResponse(r))
}

func (s *Service) handlePostSettingsReset(w http.ResponseWriter, r *http.Request) {
	s.profileRepo.ResetSettings(r.Context())
	s.respondJSON(w, http.StatusOK, s.settingsResponse(r))
}

func (s *Service) handlePostSettingsPhoto(w http.ResponseWriter, r *http.Request) {
	filename, contentType, data, err := readUpload(r, "photo")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "could not read the uploaded file")
		return
	}

	if _, err := s.profileRepo.SetSettingsPhoto(r.Context(), filename, contentType, data); err != nil {
		s.respondUploadError(w, "photo", err)
		return
	}

	s.respondJSON(w, http.StatusOK, s.settingsResponse(r))
}

// handleGetSettingsPhoto serves the live preview bytes behind the
// token handed out in SettingsResponse.
func (s *Service) handleGetSettingsPhoto(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = s.profileRepo.SettingsPhotoToken(r.Context())
	}

	contentType, data, err := s.previews.Resolve(token)
	if err != nil {
		s.respondNotFound(w, "/api/settings")
		return
	}

	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil {
		s.logger.WithError(err).Error("failed to write settings photo")
	}
}

func (s *Service) handlePostSettingsPhotoRemove(w http.ResponseWriter, r *http.Request) {
	s.profileRepo.RemoveSettingsPhoto(r.Context())
	s.respondJSON(w, http.StatusOK, s.settingsResponse(r))
}

func (s *Service) handlePostChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var req types.ChangePasswordRequest
	if err := decoder.Decode(&req, r.PostForm); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if errs := validateChangePassword(req); len(errs) > 0 {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", errs)
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{
		Notice: "Your password has been changed successfully.",
	})
}

func validateChangePassword(req types.ChangePasswordRequest) map[string]string {
	errs := map[string]string{}

	if req.OldPassword == "" {
		errs["old_password"] = "Old password is required."
	}

	if req.NewPassword == "" {
		errs["new_password"] = "New password is required."
	}

	if req.ConfirmPassword == "" {
		errs["confirm_password"] = "Confirm the new password."
	} else if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match."
	}

	return errs
}
