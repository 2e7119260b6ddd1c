package proofdoc

import "time"

// defaultTimeout bounds the content-load phase of a render.
// Matches the upstream print pipeline's 60s navigation timeout.
const defaultTimeout = 60 * time.Second

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the content-load timeout for the print stage.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("proofdoc: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithAssetStore sets the store used to resolve relative image and logo
// paths. Without a store, every relative reference degrades to the
// embedded placeholder image.
func WithAssetStore(store AssetStore) Option {
	return func(r *Renderer) {
		r.store = store
	}
}
