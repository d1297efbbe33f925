// Package snapshot persists the fingerprints of written pipeline configs.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the name of the snapshot file inside the state directory.
const FileName = "snapshots.json"

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using one flat JSON file per project.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

func path(layout domain.ProjectLayout) string {
	return filepath.Join(layout.StateDir(), FileName)
}

func load(file string) (map[string]domain.Snapshot, error) {
	entries := make(map[string]domain.Snapshot)

	//nolint:gosec // Path is derived from the project root
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, zerr.Wrap(err, "failed to read snapshot store")
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal snapshot store"), "path", file)
	}
	return entries, nil
}

func save(file string, entries map[string]domain.Snapshot) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot store")
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for snapshot store")
	}

	//nolint:gosec // Path is derived from the project root
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot store")
	}
	return nil
}

// Get retrieves the snapshot for a profile.
func (s *Store) Get(layout domain.ProjectLayout, profile string) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := load(path(layout))
	if err != nil {
		return nil, err
	}

	snap, ok := entries[profile]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Put stores the snapshot.
func (s *Store) Put(layout domain.ProjectLayout, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := path(layout)
	entries, err := load(file)
	if err != nil {
		return err
	}
	entries[snap.Profile] = snap
	return save(file, entries)
}
