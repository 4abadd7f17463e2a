package store

import (
	"context"
	"testing"

	"pgnest/internal/preview"
	"pgnest/internal/seed"
	"pgnest/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T) *ProfileRepository {
	t.Helper()
	return NewProfileRepository(testLocal(t), preview.NewRegistry(), seed.Profile(), seed.Verification())
}

func TestProfileDraftCommitCycle(t *testing.T) {
	repo := newTestProfile(t)
	ctx := context.Background()

	committed, mode, draft := repo.Profile(ctx)
	assert.Equal(t, types.EditModeViewing, mode)
	assert.Nil(t, draft)
	assert.Equal(t, "Rahul", committed.FirstName)

	repo.Edit(ctx)
	updated := seed.Profile()
	updated.FirstName = "Rohit"
	require.NoError(t, repo.UpdateDraft(ctx, updated))

	// committed value is untouched while the draft is open
	committed, mode, draft = repo.Profile(ctx)
	assert.Equal(t, types.EditModeEditing, mode)
	assert.Equal(t, "Rahul", committed.FirstName)
	require.NotNil(t, draft)
	assert.Equal(t, "Rohit", draft.FirstName)

	saved, err := repo.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rohit", saved.FirstName)

	_, mode, draft = repo.Profile(ctx)
	assert.Equal(t, types.EditModeViewing, mode)
	assert.Nil(t, draft)
}

func TestProfileCancelDiscardsDraft(t *testing.T) {
	repo := newTestProfile(t)
	ctx := context.Background()

	repo.Edit(ctx)
	updated := seed.Profile()
	updated.Phone = "+91 00000 00000"
	require.NoError(t, repo.UpdateDraft(ctx, updated))

	repo.Cancel(ctx)

	committed, mode, _ := repo.Profile(ctx)
	assert.Equal(t, types.EditModeViewing, mode)
	assert.Equal(t, "+91 98765 43210", committed.Phone)
}

func TestProfileUpdateOutsideEditMode(t *testing.T) {
	repo := newTestProfile(t)
	ctx := context.Background()

	err := repo.UpdateDraft(ctx, seed.Profile())
	assert.ErrorIs(t, err, types.ErrNotEditing)

	_, err = repo.Save(ctx)
	assert.ErrorIs(t, err, types.ErrNotEditing)
}

func TestSettingsPersistAcrossRestart(t *testing.T) {
	local := testLocal(t)
	previews := preview.NewRegistry()
	repo := NewProfileRepository(local, previews, seed.Profile(), seed.Verification())
	ctx := context.Background()

	s := repo.Settings(ctx)
	assert.Equal(t, "light", s.ThemeMode)

	s.ThemeMode = "dark"
	s.Language = "hi"
	repo.UpdateSettings(ctx, s)

	reloaded := NewProfileRepository(local, previews, seed.Profile(), seed.Verification())
	got := reloaded.Settings(ctx)
	assert.Equal(t, "dark", got.ThemeMode)
	assert.Equal(t, "hi", got.Language)

	got = reloaded.ResetSettings(ctx)
	assert.Equal(t, types.DefaultSettings(), got)
}

func TestSettingsPhotoPreviewLifecycle(t *testing.T) {
	previews := preview.NewRegistry()
	repo := NewProfileRepository(testLocal(t), previews, seed.Profile(), seed.Verification())
	ctx := context.Background()

	token, err := repo.SetSettingsPhoto(ctx, "me.png", "image/png", []byte("first"))
	require.NoError(t, err)
	_, data, err := previews.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	// replacement revokes the previous preview
	second, err := repo.SetSettingsPhoto(ctx, "me2.png", "image/png", []byte("second"))
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
	_, _, err = previews.Resolve(token)
	assert.ErrorIs(t, err, preview.ErrUnknownToken)

	repo.RemoveSettingsPhoto(ctx)
	assert.Empty(t, repo.SettingsPhotoToken(ctx))
	_, _, err = previews.Resolve(second)
	assert.ErrorIs(t, err, preview.ErrUnknownToken)
}

func TestSettingsPhotoCapsAtTwoMB(t *testing.T) {
	repo := newTestProfile(t)
	ctx := context.Background()

	big := make([]byte, (2<<20)+1)
	_, err := repo.SetSettingsPhoto(ctx, "me.png", "image/png", big)
	assert.ErrorIs(t, err, preview.ErrFileTooLarge)

	_, err = repo.SetSettingsPhoto(ctx, "me.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, preview.ErrFileType)
}
