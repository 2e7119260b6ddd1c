package proofdoc

import (
	"errors"
	"fmt"

	"github.com/wlproof/proofdoc/internal/assets"
)

// AssetStore supplies stored binary assets (uploaded evidence images,
// whitelabel logos) to the asset inliner by store-relative path,
// returning raw bytes and a MIME type.
//
// The library provides NewFileStore for filesystem-backed storage.
// Implement this interface for custom backends (object storage,
// database blobs).
type AssetStore interface {
	Open(name string) ([]byte, string, error)
}

// NewFileStore returns an AssetStore reading from dir, typically the
// upload directory of the surrounding admin system. The store is
// read-only and rejects paths escaping dir.
//
// Returns ErrInvalidAssetDir if dir is not a valid, readable directory.
func NewFileStore(dir string) (AssetStore, error) {
	inner, err := assets.NewFSStore(dir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &fileStore{inner: inner}, nil
}

// PlaceholderImage returns the embedded data URI substituted for any
// asset reference that cannot be read.
func PlaceholderImage() string {
	return assets.PlaceholderImageURI
}

// fileStore wraps the internal store to return public sentinel errors.
type fileStore struct {
	inner *assets.FSStore
}

func (s *fileStore) Open(name string) ([]byte, string, error) {
	data, mimeType, err := s.inner.Open(name)
	if err != nil {
		return nil, "", convertAssetError(err)
	}
	return data, mimeType, nil
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrInvalidBasePath):
		return fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	case errors.Is(err, assets.ErrAssetNotFound),
		errors.Is(err, assets.ErrInvalidAssetPath),
		errors.Is(err, assets.ErrPathTraversal):
		// Invalid or escaping paths surface as not found; the inliner
		// degrades either way.
		return fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	default:
		return err
	}
}
