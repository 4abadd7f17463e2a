// Package localstore persists small JSON documents on the local
// filesystem, one file per key. Reads fall back to the caller's
// default value when a key is missing or unreadable, and writes are
// best effort, so callers never branch on storage errors.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	KeyDocuments    = "tenant_documents_v1"
	KeyProfilePhoto = "tenant_profile_photo"
	KeyPreferences  = "tenant_preferences_v1"
)

type Store struct {
	fs     afero.Fs
	dir    string
	logger *logrus.Logger
}

func New(fs afero.Fs, dir string, logger *logrus.Logger) *Store {
	return &Store{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}
}

// NewOSStore roots a store at dir on the real filesystem, creating dir
// if needed.
func NewOSStore(dir string, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return New(afero.NewOsFs(), dir, logger), nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the value stored under key into out. It returns false and
// leaves out untouched when the key is absent or its contents cannot be
// decoded, so corrupt state behaves like a fresh install.
func (s *Store) Load(key string, out any) bool {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("key", key).Warn("failed to read stored value")
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("discarding corrupt stored value")
		return false
	}

	return true
}

// Save writes v under key. Failures are logged and swallowed; a full
// or read-only disk must not break the caller's in-memory state.
func (s *Store) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to encode value")
		return
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to create data dir")
		return
	}

	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to persist value")
	}
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).WithField("key", key).Warn("failed to remove stored value")
	}
}
