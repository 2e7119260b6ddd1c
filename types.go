package proofdoc

import (
	"fmt"
	"strings"
)

// MaxImages caps the number of evidence images per render context.
// Mirrors the upload limit enforced by the surrounding admin system.
const MaxImages = 5

// DefaultAccentColor is the header/footer background used when a brand
// carries no well-formed accent color.
const DefaultAccentColor = "#00008B"

// Template is an operator-authored proof template. ContentHTML is
// untrusted markup that may contain placeholder tokens such as {USER}
// and {AMOUNT}, or their legacy expression equivalents.
type Template struct {
	TypeName    string `json:"type"`
	ContentHTML string `json:"content"`
}

// Brand is the whitelabel identity stamped onto a rendered document.
type Brand struct {
	// WhitelabelUser is the public-facing whitelabel account name.
	WhitelabelUser string `json:"whitelabel_user"`

	// LogoRef locates the brand logo: a data URI, an absolute http(s)
	// URL, or a path relative to the renderer's asset store.
	LogoRef string `json:"logo"`

	// AccentColor is a "#RRGGBB" hex string. Anything else falls back
	// to DefaultAccentColor.
	AccentColor string `json:"hexacode"`

	// PublicURL is printed in the document footer.
	PublicURL string `json:"url"`
}

// Fields carries the record-derived values substituted into the proof
// template and shown in the document summary block.
type Fields struct {
	AgentName     string   `json:"agentname"`
	User          string   `json:"user"`
	Amount        *float64 `json:"amount"`
	ProfitAndLoss *float64 `json:"profitAndLoss"`
	SportName     string   `json:"sportname"`
	EventName     string   `json:"eventname"`
	MarketName    string   `json:"marketname"`
	Navigation    string   `json:"navigation"`
}

// ImageRef references one uploaded evidence image.
type ImageRef struct {
	// Path locates the image: a data URI, an absolute http(s) URL, or
	// a path relative to the renderer's asset store.
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// RenderContext is the merged input for one document render: template,
// field values, branding, and evidence images. It is constructed fresh
// per render and never persisted.
type RenderContext struct {
	Template *Template  `json:"template"`
	Fields   Fields     `json:"fields"`
	Brand    Brand      `json:"brand"`
	Images   []ImageRef `json:"images"`
}

// Validate checks that the context carries everything a render needs.
// Malformed-but-present values are not errors; they degrade inside the
// pipeline instead.
func (rc *RenderContext) Validate() error {
	if rc.Template == nil || strings.TrimSpace(rc.Template.ContentHTML) == "" {
		return ErrMissingTemplate
	}
	if len(rc.Images) > MaxImages {
		return fmt.Errorf("%w: %d (limit %d)", ErrTooManyImages, len(rc.Images), MaxImages)
	}
	return nil
}

// Result holds the artifacts of one render.
type Result struct {
	// HTML is the sanitized, placeholder-resolved, fully inlined
	// document handed to the print pipeline. Kept for debugging and
	// browser-side previews.
	HTML string

	// PDF is the captured document. Empty for RenderHTML calls.
	PDF []byte
}
