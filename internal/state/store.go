// Package state persists registry snapshots so the CLI can operate one
// registry across invocations.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
)

// ErrNoRegistry is returned when no snapshot has been created yet.
var ErrNoRegistry = errors.New("no registry initialized")

// Store persists registry snapshots.
type Store interface {
	Load() (*registry.Snapshot, error)
	Save(*registry.Snapshot) error
}

// FileStore persists snapshots as pretty-printed JSON on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed snapshot store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (*registry.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoRegistry
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry state: %w", err)
	}
	var snap registry.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing registry state: %w", err)
	}
	return &snap, nil
}

func (s *FileStore) Save(snap *registry.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry state: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemStore keeps the snapshot in memory (for tests).
type MemStore struct {
	snap *registry.Snapshot
}

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Load() (*registry.Snapshot, error) {
	if s.snap == nil {
		return nil, ErrNoRegistry
	}
	return s.snap, nil
}

func (s *MemStore) Save(snap *registry.Snapshot) error {
	s.snap = snap
	return nil
}

// LoadRegistry loads and reconstructs the registry from a store.
func LoadRegistry(s Store, opts ...registry.Option) (*registry.Registry, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}
	reg, err := registry.FromSnapshot(snap, opts...)
	if err != nil {
		return nil, fmt.Errorf("restoring registry: %w", err)
	}
	return reg, nil
}

// SaveRegistry captures and persists the registry's current state.
func SaveRegistry(s Store, reg *registry.Registry) error {
	return s.Save(reg.Snapshot())
}
