package proofdoc

import "errors"

// Sentinel errors for library operations.
var (
	// Render context validation errors.
	ErrMissingTemplate = errors.New("render context requires a proof template")
	ErrTooManyImages   = errors.New("too many images in render context")
	ErrMissingHTML     = errors.New("HTML content is required")

	// Print pipeline errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Document composition errors.
	ErrDocumentRender = errors.New("document template rendering failed")

	// Asset store errors.
	ErrInvalidAssetDir = errors.New("invalid asset directory")
	ErrAssetNotFound   = errors.New("asset not found")
)
