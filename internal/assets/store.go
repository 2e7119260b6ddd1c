package assets

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FSStore reads assets from a directory on the filesystem, typically
// the uploads/ directory written by the admin upload handler. Reads
// only; the store never mutates assets.
type FSStore struct {
	basePath string
}

// NewFSStore creates an FSStore for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable
// directory.
func NewFSStore(basePath string) (*FSStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks so the containment check in Open compares
	// like with like.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FSStore{basePath: absPath}, nil
}

// Open reads the asset at a store-relative path and returns its bytes
// and MIME type. MIME is derived from the file extension with a
// content-sniffing fallback.
func (s *FSStore) Open(name string) ([]byte, string, error) {
	if err := ValidateAssetPath(name); err != nil {
		return nil, "", err
	}

	full := filepath.Join(s.basePath, filepath.FromSlash(name))

	// Containment check after joining; ValidateAssetPath already
	// rejects traversal, this guards against platform path quirks.
	if rel, err := filepath.Rel(s.basePath, full); err != nil || strings.HasPrefix(rel, "..") {
		return nil, "", fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, "", fmt.Errorf("reading asset %q: %w", name, err)
	}

	return data, detectMIME(full, data), nil
}

// detectMIME resolves a MIME type from the file extension, falling back
// to content sniffing.
func detectMIME(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
