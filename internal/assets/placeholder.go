package assets

import (
	_ "embed"
	"encoding/base64"
)

//go:embed images/placeholder-logo.png
var placeholderImage []byte

// PlaceholderImageURI is the inline fallback substituted for any asset
// reference that cannot be fetched or read. Embedded so the fallback
// itself can never fail.
var PlaceholderImageURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(placeholderImage)
