package pipeline

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips script-execution vectors from untrusted markup while
// preserving the presentational tags and attributes the rendered
// document needs. Two profiles exist:
//
//   - strict: operator-authored template content. Allows user-generated
//     formatting plus style elements and class/style attributes, since
//     proof templates are styled inline.
//   - document: the final composed document headed for print. Widens
//     the allowlist with document structure, the stylesheet link, and
//     script src so the Tailwind CDN tag survives. Only ever applied to
//     system-generated markup.
//
// Sanitization never fails: input that cannot be cleaned degrades to
// empty output rather than propagating an error, since a broken preview
// must never block the rest of the pipeline.
type Sanitizer struct {
	strict   *bluemonday.Policy
	document *bluemonday.Policy
}

// NewSanitizer builds both profiles once; policies are safe for
// concurrent use.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		strict:   strictPolicy(),
		document: documentPolicy(),
	}
}

// Strict sanitizes operator-authored template content.
func (s *Sanitizer) Strict(ctx context.Context, raw string) string {
	return apply(ctx, s.strict, raw)
}

// Document sanitizes the final composed document.
func (s *Sanitizer) Document(ctx context.Context, raw string) string {
	return apply(ctx, s.document, raw)
}

// apply runs a policy over raw markup. A cancelled context returns the
// input unchanged; the caller aborts on its own context check. A
// panicking parse degrades to empty output.
func apply(ctx context.Context, p *bluemonday.Policy, raw string) (out string) {
	if ctx.Err() != nil {
		return raw
	}
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return p.Sanitize(raw)
}

// strictPolicy mirrors DOMPurify with ADD_TAGS:[style] and
// ADD_ATTR:[class,style]: a user-generated-content baseline widened for
// inline-styled proof templates.
func strictPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "style").Globally()
	p.AllowElements("style")
	p.AllowDataURIImages()
	// Required for style element content to survive; the profile still
	// strips script elements and event handlers.
	p.AllowUnsafe(true)
	return p
}

// documentPolicy mirrors DOMPurify with ADD_TAGS:[style,script] and
// ADD_ATTR:[class,style,src], extended with the document scaffolding
// bluemonday would otherwise strip. The tokenizer drops doctype tokens
// unconditionally; the caller restores the declaration after this pass.
func documentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "style").Globally()
	p.AllowDataURIImages()
	p.AllowElements("html", "head", "title", "body", "header", "footer", "main", "style", "script", "meta", "link")
	p.AllowAttrs("charset", "name", "content").OnElements("meta")
	p.AllowAttrs("href", "rel").OnElements("link")
	p.AllowAttrs("src").OnElements("script")
	p.AllowUnsafe(true)
	return p
}
