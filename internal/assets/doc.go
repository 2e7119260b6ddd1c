// Package assets provides read-only access to stored binary assets
// (uploaded evidence images, whitelabel logos) and the embedded
// placeholder image used when an asset cannot be read.
package assets
