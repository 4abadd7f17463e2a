package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"pgnest/internal/preview"
	"pgnest/pkg/types"
)

// uploads are read fully into memory; the rules cap them well below
// this limit
const maxUploadMemory = 12 << 20

func (s *Service) handleGetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s.respondJSON(w, http.StatusOK, types.DocumentsResponse{
		Documents:    s.documentRepo.Documents(ctx),
		Agreement:    s.documentRepo.Agreement(ctx),
		Checklist:    s.documentRepo.Checklist(ctx),
		ProfilePhoto: s.documentRepo.ProfilePhoto(ctx),
	})
}

// readUpload pulls the named multipart file into memory.
func readUpload(r *http.Request, field string) (filename, contentType string, data []byte, err error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return "", "", nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", nil, err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", "", nil, fmt.Errorf("reading upload: %w", err)
	}

	return header.Filename, header.Header.Get("Content-Type"), data, nil
}

// respondUploadError maps validation failures to field errors and
// everything else to a generic bad request.
func (s *Service) respondUploadError(w http.ResponseWriter, field string, err error) {
	if errors.Is(err, preview.ErrFileType) || errors.Is(err, preview.ErrFileTooLarge) {
		s.respondFieldErrors(w, "Please fix the highlighted fields.", map[string]string{
			field: err.Error(),
		})
		return
	}
	s.respondError(w, http.StatusBadRequest, "could not read the uploaded file")
}

func (s *Service) handlePostDocumentUpload(w http.ResponseWriter, r *http.Request) {
	filename, contentType, data, err := readUpload(r, "file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "could not read the uploaded file")
		return
	}

	doc, err := s.documentRepo.Upload(r.Context(), filename, contentType, data)
	if err != nil {
		s.respondUploadError(w, "file", err)
		return
	}

	s.respondJSON(w, http.StatusCreated, doc)
}

func (s *Service) handleGetDocumentDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	filename, contentType, data, err := s.documentRepo.Download(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrDocumentNotFound):
			s.respondNotFound(w, "/api/documents")
		case errors.Is(err, types.ErrNoFileAttached):
			s.respondError(w, http.StatusConflict, err.Error())
		default:
			s.internalServerError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		s.logger.WithError(err).Error("failed to write document download")
	}
}

func (s *Service) handlePostDocumentDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.documentRepo.Delete(r.Context(), id); err != nil {
		s.respondNotFound(w, "/api/documents")
		return
	}

	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "document deleted"})
}

func (s *Service) handlePostProfilePhoto(w http.ResponseWriter, r *http.Request) {
	filename, contentType, data, err := readUpload(r, "photo")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "could not read the uploaded file")
		return
	}

	url, err := s.documentRepo.SetProfilePhoto(r.Context(), filename, contentType, data)
	if err != nil {
		s.respondUploadError(w, "photo", err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"profilePhoto": url})
}

func (s *Service) handlePostProfilePhotoRemove(w http.ResponseWriter, r *http.Request) {
	s.documentRepo.RemoveProfilePhoto(r.Context())
	s.respondJSON(w, http.StatusOK, types.NoticeResponse{Notice: "profile photo removed"})
}
