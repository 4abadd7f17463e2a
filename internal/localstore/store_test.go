package localstore

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestStoreRoundTrip(t *testing.T) {
	store := New(afero.NewMemMapFs(), "/data", testLogger())

	type prefs struct {
		Theme    string `json:"theme"`
		FontSize string `json:"fontSize"`
	}

	store.Save(KeyPreferences, prefs{Theme: "dark", FontSize: "large"})

	var got prefs
	require.True(t, store.Load(KeyPreferences, &got))
	assert.Equal(t, prefs{Theme: "dark", FontSize: "large"}, got)
}

func TestLoadMissingKeyLeavesOutUntouched(t *testing.T) {
	store := New(afero.NewMemMapFs(), "/data", testLogger())

	got := map[string]string{"theme": "light"}
	assert.False(t, store.Load("never_written", &got))
	assert.Equal(t, map[string]string{"theme": "light"}, got)
}

func TestLoadCorruptValueLeavesOutUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := New(fs, "/data", testLogger())

	require.NoError(t, afero.WriteFile(fs, "/data/"+KeyDocuments+".json", []byte("{not json"), 0o644))

	got := []string{"existing"}
	assert.False(t, store.Load(KeyDocuments, &got))
	assert.Equal(t, []string{"existing"}, got)
}

func TestSaveSwallowsWriteFailures(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := New(fs, "/data", testLogger())

	assert.NotPanics(t, func() {
		store.Save(KeyProfilePhoto, "data:image/png;base64,AAAA")
	})

	var got string
	assert.False(t, store.Load(KeyProfilePhoto, &got))
}

func TestRemove(t *testing.T) {
	store := New(afero.NewMemMapFs(), "/data", testLogger())

	store.Save(KeyProfilePhoto, "data:image/png;base64,AAAA")
	store.Remove(KeyProfilePhoto)

	var got string
	assert.False(t, store.Load(KeyProfilePhoto, &got))

	// removing an absent key is fine
	assert.NotPanics(t, func() { store.Remove("never_written") })
}
