package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store defines the interface for project file operations. All names are
// relative to the project root.
type Store interface {
	// Read retrieves a file's content.
	Read(name string) ([]byte, error)
	// Write writes content, creating parent directories as needed.
	Write(name string, data []byte) error
	// List returns the file names directly under dir (no recursion).
	List(dir string) ([]string, error)
	// Delete removes a file. Deleting a missing file is not an error.
	Delete(name string) error
	// Exists reports whether a file is present.
	Exists(name string) (bool, error)
}

// NewStore creates a Store over fs rooted at root.
func NewStore(fs afero.Fs, root string) Store {
	return &fsStore{fs: fs, root: root}
}

type fsStore struct {
	fs   afero.Fs
	root string
}

func (s *fsStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

func (s *fsStore) Read(name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (s *fsStore) Write(name string, data []byte) error {
	p := s.path(name)
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *fsStore) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.path(dir))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}

func (s *fsStore) Delete(name string) error {
	if err := s.fs.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func (s *fsStore) Exists(name string) (bool, error) {
	return afero.Exists(s.fs, s.path(name))
}
