package proofdoc

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/wlproof/proofdoc/internal/assets"
	"github.com/wlproof/proofdoc/internal/pipeline"
)

// Stage contracts, satisfied by internal/pipeline and by test mocks.

type htmlSanitizer interface {
	Strict(ctx context.Context, raw string) string
	Document(ctx context.Context, raw string) string
}

type placeholderResolver interface {
	Resolve(ctx context.Context, tmpl string, fields pipeline.FieldValues) string
}

type assetInliner interface {
	Inline(ctx context.Context, refs []string) []string
	InlineOne(ctx context.Context, ref string) string
}

type documentComposer interface {
	Compose(ctx context.Context, data *pipeline.DocumentData) (string, error)
}

type pdfPrinter interface {
	Print(ctx context.Context, htmlContent string) ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ htmlSanitizer       = (*pipeline.Sanitizer)(nil)
	_ placeholderResolver = pipeline.Resolver{}
	_ assetInliner        = (*pipeline.Inliner)(nil)
	_ documentComposer    = (*pipeline.Composer)(nil)
	_ pdfPrinter          = (*rodPrinter)(nil)
)

// Renderer orchestrates the render pipeline: sanitize, resolve
// placeholders, inline assets, compose, print. A Renderer is safe for
// concurrent use; each Render owns its own browser instance for the
// duration of the call.
type Renderer struct {
	cfg   rendererConfig
	store AssetStore

	sanitizer htmlSanitizer
	resolver  placeholderResolver
	inliner   assetInliner
	composer  documentComposer
	printer   pdfPrinter
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAssetStore).
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(r)
	}

	composer, err := pipeline.NewComposer()
	if err != nil {
		return nil, fmt.Errorf("initializing document composer: %w", err)
	}

	r.sanitizer = pipeline.NewSanitizer()
	r.resolver = pipeline.Resolver{}
	r.composer = composer
	r.inliner = &pipeline.Inliner{
		Store:       r.store,
		Placeholder: assets.PlaceholderImageURI,
	}
	r.printer = newRodPrinter(r.cfg.timeout)

	return r, nil
}

// Render runs the full pipeline and returns the composed HTML and the
// captured PDF. The context is used for cancellation and timeout.
func (r *Renderer) Render(ctx context.Context, rc RenderContext) (*Result, error) {
	htmlDoc, err := r.RenderHTML(ctx, rc)
	if err != nil {
		return nil, err
	}

	pdf, err := r.printer.Print(ctx, htmlDoc)
	if err != nil {
		return nil, fmt.Errorf("printing document: %w", err)
	}

	return &Result{HTML: htmlDoc, PDF: pdf}, nil
}

// RenderHTML runs every stage except the print pipeline and returns the
// sanitized, placeholder-resolved, fully inlined document. Useful for
// browser-side previews and debugging.
func (r *Renderer) RenderHTML(ctx context.Context, rc RenderContext) (string, error) {
	if err := rc.Validate(); err != nil {
		return "", err
	}

	// Strict-profile sanitization of the operator-authored template.
	proof := r.sanitizer.Strict(ctx, rc.Template.ContentHTML)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Placeholder resolution; normalization precedes substitution
	// inside Resolve.
	proof = r.resolver.Resolve(ctx, proof, toFieldValues(rc.Fields))
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Inline the logo and evidence images.
	logoSrc := r.inliner.InlineOne(ctx, rc.Brand.LogoRef)
	refs := make([]string, len(rc.Images))
	for i, img := range rc.Images {
		refs[i] = img.Path
	}
	inlined := r.inliner.Inline(ctx, refs)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// An empty image path means the upload record carried no file; it
	// renders as the gallery's unavailability note, not the placeholder
	// image. The placeholder is reserved for paths that fail to read.
	gallery := make([]pipeline.GalleryImage, len(rc.Images))
	for i, img := range rc.Images {
		var src template.URL
		if img.Path != "" {
			src = template.URL(inlined[i])
		}
		gallery[i] = pipeline.GalleryImage{
			Src:      src,
			Filename: img.Filename,
		}
	}

	doc, err := r.composer.Compose(ctx, &pipeline.DocumentData{
		AccentColor:    rc.Brand.AccentColor,
		LogoSrc:        template.URL(logoSrc),
		WhitelabelUser: rc.Brand.WhitelabelUser,
		AgentName:      rc.Fields.AgentName,
		User:           rc.Fields.User,
		Amount:         amountString(rc.Fields.Amount),
		SportName:      rc.Fields.SportName,
		EventName:      rc.Fields.EventName,
		MarketName:     rc.Fields.MarketName,
		ProofHTML:      template.HTML(proof),
		Navigation:     rc.Fields.Navigation,
		PublicURL:      rc.Brand.PublicURL,
		Images:         gallery,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrDocumentRender) {
			return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
		}
		return "", fmt.Errorf("composing document: %w", err)
	}

	// Document-profile pass over the system-generated document.
	return ensureDoctype(r.sanitizer.Document(ctx, doc)), nil
}

// ensureDoctype restores the doctype declaration the document-profile
// sanitizer strips. Without it Chrome renders in quirks mode and the
// fixed page geometry drifts.
func ensureDoctype(doc string) string {
	if strings.HasPrefix(strings.TrimSpace(doc), "<!DOCTYPE") {
		return doc
	}
	return "<!DOCTYPE html>\n" + doc
}

// RenderDocument prints caller-composed HTML without running the
// earlier stages. The caller is responsible for sanitization and
// inlining; the document should be fully self-contained.
func (r *Renderer) RenderDocument(ctx context.Context, htmlContent string) ([]byte, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, ErrMissingHTML
	}

	pdf, err := r.printer.Print(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("printing document: %w", err)
	}
	return pdf, nil
}

// toFieldValues converts the public Fields type to the pipeline's
// substitution input.
func toFieldValues(f Fields) pipeline.FieldValues {
	return pipeline.FieldValues{
		User:       f.User,
		Amount:     f.Amount,
		ProfitLoss: f.ProfitAndLoss,
		SportName:  f.SportName,
		EventName:  f.EventName,
		MarketName: f.MarketName,
	}
}

// amountString formats an amount for the document summary block.
// Empty for nil; the composer degrades empties to "N/A".
func amountString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
