package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/validgen/validgen/internal/domain"
)

// Store is a file-based implementation of domain.ManifestStore.
type Store struct{}

// New creates a new file-based manifest store.
func New() *Store {
	return &Store{}
}

// Load reads a generation manifest from disk. Returns (nil, nil) if no
// manifest exists yet.
func (s *Store) Load(dir string) (*domain.Manifest, error) {
	data, err := os.ReadFile(manifestPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // first run, nothing recorded yet
		}
		return nil, err
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes a generation manifest to disk, creating directories as
// needed.
func (s *Store) Save(m *domain.Manifest) error {
	dir := filepath.Join(m.ProjectPath, ".validgen")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(manifestPath(m.ProjectPath), data, 0644)
}

// Invalidate removes the manifest for the given directory.
func (s *Store) Invalidate(dir string) error {
	if err := os.Remove(manifestPath(dir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func manifestPath(dir string) string {
	return filepath.Join(dir, ".validgen", "manifest.json")
}
