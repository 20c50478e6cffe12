// Package draft keeps the in-progress tournament-guideline form durable
// across restarts. There is exactly one slot: a single JSON file. The channel
// is live only while no match is being edited; the caller (guideline service)
// enforces that.
package draft

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// FileStore serializes the draft form to a single file on every save and
// clears it on reset or once the draft has been promoted into a match.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "draft").Logger(),
	}
}

// Save writes the draft through to the durable slot.
func (f *FileStore) Save(form models.TournamentInfoFormData) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Load reads the slot and merges it over the default empty form, so drafts
// saved by older shapes of the form fall back to defaults field by field. A
// missing or unreadable slot yields (zero form, false): corrupt content is
// discarded, never surfaced.
func (f *FileStore) Load() (models.TournamentInfoFormData, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var form models.TournamentInfoFormData

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn().Err(err).Msg("draft unreadable, discarding")
			_ = os.Remove(f.path)
		}
		return form, false
	}
	if err := json.Unmarshal(data, &form); err != nil {
		f.log.Warn().Err(err).Msg("draft corrupt, discarding")
		_ = os.Remove(f.path)
		return models.TournamentInfoFormData{}, false
	}
	return form, true
}

// Clear empties the slot. Clearing an already-empty slot is fine.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
