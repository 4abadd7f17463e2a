// Package preview validates incoming file uploads and hands out
// short-lived handles to in-memory previews, mirroring how a browser
// treats object URLs: a preview exists until it is revoked or replaced
// and is never written to disk.
package preview

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pgnest/internal/utils"
)

var (
	ErrFileType     = errors.New("unsupported file type")
	ErrFileTooLarge = errors.New("file exceeds the size limit")
	ErrUnknownToken = errors.New("unknown preview token")
)

// Rule describes what a single upload surface accepts.
type Rule struct {
	Label    string
	AllowPDF bool
	MaxBytes int64
}

var (
	// DocumentUploadRule covers tenant document uploads, which accept
	// scans as images or PDFs.
	DocumentUploadRule = Rule{Label: "document", AllowPDF: true, MaxBytes: 10 << 20}

	// ProfilePhotoRule covers the persisted profile photo on the
	// documents page.
	ProfilePhotoRule = Rule{Label: "profile photo", AllowPDF: false, MaxBytes: 5 << 20}

	// SettingsPhotoRule covers the settings page photo preview, which
	// is never persisted.
	SettingsPhotoRule = Rule{Label: "photo", AllowPDF: false, MaxBytes: 2 << 20}
)

// Validate checks an upload against the rule. The content type wins
// over the filename; the filename extension is only consulted when the
// content type is empty.
func (r Rule) Validate(filename, contentType string, size int64) error {
	if !r.accepts(filename, contentType) {
		return fmt.Errorf("%w: %s must be an image%s", ErrFileType, r.Label, r.pdfSuffix())
	}

	if size > r.MaxBytes {
		return fmt.Errorf("%w: %s must be under %d MB", ErrFileTooLarge, r.Label, r.MaxBytes>>20)
	}

	return nil
}

func (r Rule) accepts(filename, contentType string) bool {
	ct := strings.ToLower(contentType)
	if ct != "" {
		if strings.HasPrefix(ct, "image/") {
			return true
		}
		return r.AllowPDF && ct == "application/pdf"
	}

	ext := strings.ToLower(filename)
	for _, imgExt := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.HasSuffix(ext, imgExt) {
			return true
		}
	}

	return r.AllowPDF && strings.HasSuffix(ext, ".pdf")
}

func (r Rule) pdfSuffix() string {
	if r.AllowPDF {
		return " or PDF"
	}
	return ""
}

// DataURL encodes raw bytes as a data: URL, the persisted form of
// images in the local store.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL splits a data: URL back into its content type and raw
// bytes.
func ParseDataURL(url string) (contentType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", nil, errors.New("not a data url")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("malformed data url")
	}

	contentType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data url payload: %w", err)
	}

	return contentType, data, nil
}

type entry struct {
	contentType string
	data        []byte
}

// Registry owns live previews keyed by opaque tokens.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Create stores a preview and returns its token.
func (r *Registry) Create(contentType string, data []byte) string {
	token := utils.NanoID()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[token] = entry{contentType: contentType, data: data}
	return token
}

// Resolve returns the preview behind a token.
func (r *Registry) Resolve(token string) (contentType string, data []byte, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[token]
	if !ok {
		return "", nil, ErrUnknownToken
	}

	return e.contentType, e.data, nil
}

// Revoke releases a single preview. Revoking an unknown token is a
// no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, token)
}

// Close releases every live preview.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]entry)
}
