// Package pipeline implements the document render stages: sanitization,
// placeholder resolution, asset inlining, and document composition.
//
// Stages are total functions with graceful degradation: malformed input
// produces safe output (empty markup, "N/A" values, placeholder images)
// rather than errors. Only structurally absent input is rejected, and
// that happens in the orchestrating package before any stage runs.
package pipeline
