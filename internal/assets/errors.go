package assets

import "errors"

// Sentinel errors for asset store operations.
var (
	ErrInvalidBasePath  = errors.New("invalid asset base path")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrPathTraversal    = errors.New("asset path escapes base directory")
	ErrAssetNotFound    = errors.New("asset not found")
)
