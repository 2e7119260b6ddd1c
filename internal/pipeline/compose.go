package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
)

// ErrDocumentRender indicates the document template failed to execute.
var ErrDocumentRender = errors.New("document template rendering failed")

// DefaultAccentColor is used when a brand carries no well-formed accent
// color.
const DefaultAccentColor = "#00008B"

// accentColorPattern accepts a 6-digit hex color prefixed with '#'.
var accentColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// GalleryImage is one evidence image in the composed document. An empty
// Src renders as a literal "Image not available" note instead of a
// broken reference.
type GalleryImage struct {
	Src      template.URL
	Filename string
}

// DocumentData is the fully resolved input to the document template.
// String fields are rendered as-is after defaulting; ProofHTML must
// already be sanitized and placeholder-resolved.
type DocumentData struct {
	AccentColor    string
	LogoSrc        template.URL
	WhitelabelUser string
	AgentName      string
	User           string
	Amount         string
	SportName      string
	EventName      string
	MarketName     string
	ProofHTML      template.HTML
	Navigation     string
	PublicURL      string
	Images         []GalleryImage
}

// documentTemplate is the fixed A4 (595x842pt at 72 DPI) document
// layout: accent-colored header with the brand logo, field summary,
// resolved proof text, navigation line, image gallery, and an
// accent-colored footer with the brand URL. The @page rule governs
// final geometry; the print stage defers to it via preferCSSPageSize.
const documentTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script src="https://cdn.tailwindcss.com"></script>
    <link href="https://fonts.googleapis.com/css2?family=Amaranth&display=swap" rel="stylesheet">
    <style>
      @page {
        height: 100%;
        width: 100%;
        margin: 0;
      }
      body {
        font-family: 'Amaranth', sans-serif;
      }
    </style>
  </head>
  <body class="font-amaranth w-full h-full text-black text-base m-0 p-0">
    <div class="min-h-[842px] mx-auto flex flex-col">
      <header class="sticky top-0 z-10 flex items-center justify-between p-5 text-white" style="background-color: {{.AccentColor}};">
        <img src="{{.LogoSrc}}" alt="Whitelabel Logo" class="ml-[20px] max-h-[50px] w-auto" />
        <span></span>
      </header>
      <main class="p-3" style="min-height: calc(842px - 100px);">
        <div class="flex justify-between mb-5 text-[14px] mx-[25px]">
          <div class="flex-1 mr-2.5">
            <span class="font-bold">Whitelabel User: {{.WhitelabelUser}}</span> <br/>
            <span class="font-bold">Agent: {{.AgentName}}</span> <br/>
            <span class="font-bold">User: {{.User}}</span>
          </div>
          <div class="flex-1 mr-2.5">
            <span class="font-bold">Total Amount: {{.Amount}}</span>
          </div>
          <div class="flex-1">
            <span class="font-bold">Sport Name: {{.SportName}}</span><br/>
            <span class="font-bold">Event Name: {{.EventName}}</span> <br/>
            <span class="font-bold">Market Name: {{.MarketName}}</span>
          </div>
        </div>
        <div class="leading-6 text-[16px] mt-[24px] text-black mx-[24px]">
          <div class="">{{.ProofHTML}}</div>
        </div>
        <div class="italic font-bold ml-[48px] mx-[24px]">
          <span class="font-bold text-[16px]">{{.Navigation}}</span>
        </div>
        <div class="mt-5 w-full flex flex-wrap gap-2.5 mr-[25px]">
          {{- if .Images}}
          {{- range .Images}}
          {{- if .Src}}
          <img src="{{.Src}}" alt="{{.Filename}}" class="w-full h-[150px]" />
          {{- else}}
          <p class="text-gray-500">Image not available</p>
          {{- end}}
          {{- end}}
          {{- else}}
          <p class="text-gray-500">No images available</p>
          {{- end}}
        </div>
      </main>
      <footer class="absolute bottom-0 w-full flex justify-between p-4 text-white" style="background-color: {{.AccentColor}};">
        <p class="text-[10px]">{{.PublicURL}}</p>
        <p class="text-[5px] text-right">T&amp;C Apply</p>
      </footer>
    </div>
  </body>
</html>
`

// Composer assembles the fixed-page-size document from resolved parts.
// Pure string assembly; no rendering happens here.
type Composer struct {
	tmpl *template.Template
}

// NewComposer parses the embedded document template.
func NewComposer() (*Composer, error) {
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &Composer{tmpl: tmpl}, nil
}

// Compose emits a syntactically valid, fully self-contained HTML
// document. Missing values degrade to "N/A"; a missing or malformed
// accent color falls back to DefaultAccentColor. Never fails for
// malformed-but-present input.
func (c *Composer) Compose(ctx context.Context, data *DocumentData) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	filled := *data
	if !accentColorPattern.MatchString(filled.AccentColor) {
		filled.AccentColor = DefaultAccentColor
	}
	filled.WhitelabelUser = textOrMissing(filled.WhitelabelUser)
	filled.AgentName = textOrMissing(filled.AgentName)
	filled.User = textOrMissing(filled.User)
	filled.Amount = textOrMissing(filled.Amount)
	filled.SportName = textOrMissing(filled.SportName)
	filled.EventName = textOrMissing(filled.EventName)
	filled.MarketName = textOrMissing(filled.MarketName)
	filled.Navigation = textOrMissing(filled.Navigation)
	if filled.PublicURL == "" {
		filled.PublicURL = "No URL available"
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, &filled); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}
