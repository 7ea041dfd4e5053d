package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	apperrors "nt-data-lab/internal/errors"
)

// DirStore keeps fixtures as files in a local directory.
type DirStore struct {
	root string
}

// NewDirStore creates a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

// Get reads a fixture file.
func (d *DirStore) Get(_ context.Context, name string) ([]byte, error) {
	if err := ValidateFixtureName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrFixtureNotFound
		}
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	return data, nil
}

// Put writes a fixture file, creating the root if needed.
func (d *DirStore) Put(_ context.Context, name string, body []byte) error {
	if err := ValidateFixtureName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	return os.WriteFile(filepath.Join(d.root, name), body, 0o644)
}

// List returns the fixture file names.
func (d *DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if !e.IsDir() && ValidateFixtureName(e.Name()) == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
