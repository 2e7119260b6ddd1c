// Package proofdoc renders branded betting-proof documents to PDF using
// headless Chrome.
//
// # Quick Start
//
// Create a renderer and render a context:
//
//	renderer, err := proofdoc.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := renderer.Render(ctx, proofdoc.RenderContext{
//	    Template: &proofdoc.Template{
//	        TypeName:    "Odds Manipulating Or Odds Hedging",
//	        ContentHTML: "<p>User: {USER}, Amount: {AMOUNT}</p>",
//	    },
//	    Fields: proofdoc.Fields{User: "abcd2000"},
//	    Brand:  proofdoc.Brand{AccentColor: "#00008B"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("proof.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the composed
// HTML (result.HTML) for debugging. Use RenderHTML to stop before the
// print stage.
//
// # Render Pipeline
//
// Each render runs these stages in strict order:
//
//  1. Sanitization of the proof template (bluemonday, strict profile)
//  2. Placeholder resolution (legacy-form normalization, then substitution)
//  3. Asset inlining (logo and evidence images become data URIs)
//  4. Document composition (fixed A4 layout with whitelabel branding)
//  5. PDF capture via headless Chrome (go-rod)
//
// Stages 1-4 degrade gracefully: malformed markup sanitizes to safe
// output, missing field values render as "N/A", and unreadable assets
// fall back to an embedded placeholder image. Only stage 5 can fail the
// render.
//
// # Asset Stores
//
// Relative image and logo paths are resolved through an AssetStore.
// NewFileStore reads from a local directory (typically the upload
// directory of the surrounding admin system):
//
//	store, err := proofdoc.NewFileStore("uploads")
//	renderer, err := proofdoc.NewRenderer(proofdoc.WithAssetStore(store))
//
// Data URIs and absolute http(s) URLs in image references pass through
// untouched.
//
// # Concurrency
//
// Renders are independent: every Render call launches its own browser
// and tears it down before returning, so a Renderer is safe for
// concurrent use. RendererPool bounds how many renders run at once for
// batch workloads.
//
// # Browser Requirements
//
// PDF capture requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run. For containers and CI, set
// ROD_NO_SANDBOX=1 to disable the Chrome sandbox and ROD_BROWSER_BIN to
// use a pre-installed binary.
package proofdoc
