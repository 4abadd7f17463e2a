package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pgnest/internal/localstore"
	"pgnest/internal/preview"
	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

type DocumentRepository struct {
	mu        sync.Mutex
	documents []types.Document
	photo     string
	agreement types.AgreementSummary
	checklist []types.ChecklistItem
	local     *localstore.Store
}

// NewDocumentRepository loads persisted documents and the profile
// photo from the local store, falling back to the seeded set.
func NewDocumentRepository(local *localstore.Store, seeded []types.Document, agreement types.AgreementSummary, checklist []types.ChecklistItem) *DocumentRepository {
	r := &DocumentRepository{
		documents: seeded,
		agreement: agreement,
		checklist: checklist,
		local:     local,
	}

	var stored []types.Document
	if local.Load(localstore.KeyDocuments, &stored) && len(stored) > 0 {
		r.documents = stored
	}
	local.Load(localstore.KeyProfilePhoto, &r.photo)

	return r
}

// Documents returns the current list, newest uploads first.
func (r *DocumentRepository) Documents(ctx context.Context) []types.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Document, len(r.documents))
	copy(out, r.documents)
	return out
}

func (r *DocumentRepository) Agreement(ctx context.Context) types.AgreementSummary {
	return r.agreement
}

func (r *DocumentRepository) Checklist(ctx context.Context) []types.ChecklistItem {
	out := make([]types.ChecklistItem, len(r.checklist))
	copy(out, r.checklist)
	return out
}

// Upload validates and stores a new document. The file content is kept
// as a data URL so the record survives restarts via the local store.
func (r *DocumentRepository) Upload(ctx context.Context, filename, contentType string, data []byte) (*types.Document, error) {
	if err := preview.DocumentUploadRule.Validate(filename, contentType, int64(len(data))); err != nil {
		return nil, err
	}

	category := types.DocCategoryOther
	if contentType == "application/pdf" {
		category = types.DocCategoryAgreement
	}

	doc := types.Document{
		ID:         uuid.NewString(),
		Name:       displayName(filename),
		Category:   category,
		Status:     types.DocumentStatusPending,
		UploadDate: utils.FormatDate(time.Now()),
		Size:       utils.FormatSize(int64(len(data))),
		FileData:   preview.DataURL(contentType, data),
		FileName:   filename,
		FileType:   contentType,
	}

	r.mu.Lock()
	r.documents = append([]types.Document{doc}, r.documents...)
	r.persistLocked()
	r.mu.Unlock()

	return &doc, nil
}

// Download returns the stored file behind a document. Seeded demo rows
// carry no payload.
func (r *DocumentRepository) Download(ctx context.Context, id string) (filename, contentType string, data []byte, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range r.documents {
		if doc.ID != id {
			continue
		}
		if doc.FileData == "" {
			return "", "", nil, types.ErrNoFileAttached
		}
		contentType, data, err = preview.ParseDataURL(doc.FileData)
		if err != nil {
			return "", "", nil, err
		}
		return doc.FileName, contentType, data, nil
	}

	return "", "", nil, types.ErrDocumentNotFound
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, doc := range r.documents {
		if doc.ID == id {
			r.documents = append(r.documents[:i], r.documents[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return types.ErrDocumentNotFound
}

// ProfilePhoto returns the persisted photo data URL, if any.
func (r *DocumentRepository) ProfilePhoto(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.photo
}

// SetProfilePhoto validates and persists the documents-page profile
// photo.
func (r *DocumentRepository) SetProfilePhoto(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := preview.ProfilePhotoRule.Validate(filename, contentType, int64(len(data))); err != nil {
		return "", err
	}

	url := preview.DataURL(contentType, data)

	r.mu.Lock()
	r.photo = url
	r.local.Save(localstore.KeyProfilePhoto, url)
	r.mu.Unlock()

	return url, nil
}

func (r *DocumentRepository) RemoveProfilePhoto(ctx context.Context) {
	r.mu.Lock()
	r.photo = ""
	r.local.Remove(localstore.KeyProfilePhoto)
	r.mu.Unlock()
}

// persistLocked writes the document list through the local store. An
// empty list is not written, so a fresh start reseeds the demo rows
// instead of showing an empty page.
func (r *DocumentRepository) persistLocked() {
	if len(r.documents) == 0 {
		r.local.Remove(localstore.KeyDocuments)
		return
	}
	r.local.Save(localstore.KeyDocuments, r.documents)
}

// displayName strips the extension for the document card title.
func displayName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
