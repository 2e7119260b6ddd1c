package main

import (
	"errors"
	"os"

	proofdoc "github.com/wlproof/proofdoc"
)

// Exit codes for the proofdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, proofdoc.ErrBrowserConnect) ||
		errors.Is(err, proofdoc.ErrPageCreate) ||
		errors.Is(err, proofdoc.ErrPageLoad) ||
		errors.Is(err, proofdoc.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContext) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, proofdoc.ErrInvalidAssetDir) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrParseContext) ||
		errors.Is(err, proofdoc.ErrMissingTemplate) ||
		errors.Is(err, proofdoc.ErrTooManyImages) {
		return ExitUsage
	}

	return ExitGeneral
}
