package assets

import (
	"fmt"
	"path"
	"strings"
)

// ValidateAssetPath checks that a store-relative path is safe to join
// under a base directory. Returns ErrInvalidAssetPath for empty or
// malformed paths and ErrPathTraversal for paths that climb out of the
// store.
func ValidateAssetPath(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidAssetPath)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: null byte", ErrInvalidAssetPath)
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return fmt.Errorf("%w: absolute path %q", ErrInvalidAssetPath, name)
	}

	cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}
	return nil
}
