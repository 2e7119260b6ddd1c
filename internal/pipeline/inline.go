package pipeline

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"sync"
)

// AssetOpener reads stored binary assets by store-relative path,
// returning the raw bytes and a MIME type.
type AssetOpener interface {
	Open(name string) ([]byte, string, error)
}

// Inliner converts asset references into self-contained inline
// representations so the composed document has no store dependencies at
// render time. Three reference forms are handled uniformly:
//
//   - data: URIs pass through unchanged (already inline)
//   - absolute http(s) URLs pass through unchanged (externally reachable)
//   - anything else resolves against the store, is read, and becomes a
//     base64 data URI
//
// A reference that cannot be read degrades to Placeholder; there are no
// retries, and inlining never fails the pipeline.
type Inliner struct {
	Store AssetOpener

	// Placeholder is the data URI substituted for unreadable assets.
	Placeholder string
}

// Inline resolves each reference concurrently. Assets are independent,
// so per-asset goroutines fan out and the result preserves input order.
func (in *Inliner) Inline(ctx context.Context, refs []string) []string {
	out := make([]string, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			out[i] = in.InlineOne(ctx, ref)
		}(i, ref)
	}
	wg.Wait()
	return out
}

// InlineOne resolves a single reference.
func (in *Inliner) InlineOne(ctx context.Context, ref string) string {
	if ref == "" {
		return in.Placeholder
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if ctx.Err() != nil || in.Store == nil {
		return in.Placeholder
	}

	name := strings.TrimPrefix(ref, "/")
	data, mimeType, err := in.Store.Open(name)
	if err != nil || len(data) == 0 {
		return in.Placeholder
	}
	return EncodeDataURI(data, mimeType)
}

// EncodeDataURI builds a data: URI for raw bytes. An empty MIME type is
// sniffed from the content.
func EncodeDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
