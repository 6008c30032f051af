// Package notifyfile implements a NotificationStore backed by a flat JSON
// file. It stands in for the platform notification center so the CLI's
// sync, pending and cancel commands compose across invocations.
package notifyfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/nudge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NotificationStore = (*Store)(nil)

type pendingRequest struct {
	Trigger domain.Trigger `json:"trigger"`
	Content domain.Content `json:"content"`
}

// Store implements ports.NotificationStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]pendingRequest
}

// NewStore creates a Store backed by the file at the given path. A missing
// file means an empty pending set.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]pendingRequest),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Authorized always reports true: the local file needs no permission. The
// real permission gate lives in front of the platform store.
func (s *Store) Authorized(_ context.Context) (bool, error) {
	return true, nil
}

// RequestAuthorization always grants.
func (s *Store) RequestAuthorization(_ context.Context) (bool, error) {
	return true, nil
}

// Pending returns all pending identifiers, sorted for stable output.
func (s *Store) Pending(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.cache))
	for id := range s.cache {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Add registers a trigger under the given identifier, replacing any previous
// trigger with the same identifier.
func (s *Store) Add(_ context.Context, id string, trigger domain.Trigger, content domain.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[id] = pendingRequest{Trigger: trigger, Content: content}
	return s.persistLocked()
}

// Remove deletes the given identifiers. Unknown identifiers are ignored.
func (s *Store) Remove(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.cache, id)
	}
	return s.persistLocked()
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStateReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, domain.ErrStateReadFailed.Error())
	}
	return nil
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}
	return nil
}
