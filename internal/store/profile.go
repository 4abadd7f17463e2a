package store

import (
	"context"
	"sync"

	"pgnest/internal/localstore"
	"pgnest/internal/preview"
	"pgnest/pkg/types"
)

// ProfileRepository manages the tenant profile's draft/commit cycle
// and the settings preferences. Settings persist through the local
// store; the settings photo is a revocable preview and never persists.
type ProfileRepository struct {
	mu           sync.Mutex
	committed    types.Profile
	draft        *types.Profile
	verification []types.VerificationItem

	settings   types.Settings
	photoToken string

	local    *localstore.Store
	previews *preview.Registry
}

func NewProfileRepository(local *localstore.Store, previews *preview.Registry, profile types.Profile, verification []types.VerificationItem) *ProfileRepository {
	r := &ProfileRepository{
		committed:    profile,
		verification: verification,
		settings:     types.DefaultSettings(),
		local:        local,
		previews:     previews,
	}

	var stored types.Settings
	if local.Load(localstore.KeyPreferences, &stored) {
		r.settings = stored
	}

	return r
}

// Profile returns the committed profile, the edit mode, and the draft
// when editing.
func (r *ProfileRepository) Profile(ctx context.Context) (types.Profile, types.EditMode, *types.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.draft == nil {
		return r.committed, types.EditModeViewing, nil
	}
	draft := *r.draft
	return r.committed, types.EditModeEditing, &draft
}

func (r *ProfileRepository) Verification(ctx context.Context) []types.VerificationItem {
	out := make([]types.VerificationItem, len(r.verification))
	copy(out, r.verification)
	return out
}

// Edit opens a draft seeded from the committed profile. Calling it
// while already editing keeps the existing draft.
func (r *ProfileRepository) Edit(ctx context.Context) types.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.draft == nil {
		draft := r.committed
		r.draft = &draft
	}
	return *r.draft
}

// UpdateDraft replaces the draft's fields. The committed profile is
// untouched until Save.
func (r *ProfileRepository) UpdateDraft(ctx context.Context, p types.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.draft == nil {
		return types.ErrNotEditing
	}
	*r.draft = p
	return nil
}

// Save commits the draft and returns to viewing mode.
func (r *ProfileRepository) Save(ctx context.Context) (types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.draft == nil {
		return r.committed, types.ErrNotEditing
	}
	r.committed = *r.draft
	r.draft = nil
	return r.committed, nil
}

// Cancel discards the draft.
func (r *ProfileRepository) Cancel(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = nil
}

// Settings returns the current preferences.
func (r *ProfileRepository) Settings(ctx context.Context) types.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// UpdateSettings replaces the preferences and persists them.
func (r *ProfileRepository) UpdateSettings(ctx context.Context, s types.Settings) types.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = s
	r.local.Save(localstore.KeyPreferences, s)
	return r.settings
}

// ResetSettings restores the defaults and persists them.
func (r *ProfileRepository) ResetSettings(ctx context.Context) types.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = types.DefaultSettings()
	r.local.Save(localstore.KeyPreferences, r.settings)
	return r.settings
}

// SetSettingsPhoto validates the settings page photo and swaps the
// live preview, revoking the previous one.
func (r *ProfileRepository) SetSettingsPhoto(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := preview.SettingsPhotoRule.Validate(filename, contentType, int64(len(data))); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.photoToken != "" {
		r.previews.Revoke(r.photoToken)
	}
	r.photoToken = r.previews.Create(contentType, data)
	return r.photoToken, nil
}

// RemoveSettingsPhoto revokes the live preview, if any.
func (r *ProfileRepository) RemoveSettingsPhoto(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.photoToken != "" {
		r.previews.Revoke(r.photoToken)
		r.photoToken = ""
	}
}

// SettingsPhotoToken returns the live preview token, or empty when no
// photo is set.
func (r *ProfileRepository) SettingsPhotoToken(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.photoToken
}
