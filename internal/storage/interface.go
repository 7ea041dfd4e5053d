package storage

import (
	"context"
	"strings"

	apperrors "nt-data-lab/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_fixture_store.go -package=mocks nt-data-lab/internal/storage FixtureStore

// FixtureStore serves XML fixture documents by name.
type FixtureStore interface {
	// Get returns the fixture content. Returns ErrFixtureNotFound if it doesn't exist.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put stores a fixture, replacing any previous content.
	Put(ctx context.Context, name string, body []byte) error
	// List returns the names of the stored fixtures.
	List(ctx context.Context) ([]string, error)
}

var (
	_ FixtureStore = (*S3Store)(nil)
	_ FixtureStore = (*DirStore)(nil)
)

// ValidateFixtureName rejects names that could escape the fixture root.
func ValidateFixtureName(name string) error {
	if name == "" ||
		strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) ||
		!strings.HasSuffix(name, ".xml") ||
		name == ".xml" {
		return apperrors.ErrInvalidFixtureName
	}
	return nil
}
