package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"
)

type fakeStore struct {
	assets map[string][]byte
	mime   string
	err    error

	mu     sync.Mutex
	opened []string
}

func (s *fakeStore) Open(name string) ([]byte, string, error) {
	s.mu.Lock()
	s.opened = append(s.opened, name)
	s.mu.Unlock()
	if s.err != nil {
		return nil, "", s.err
	}
	data, ok := s.assets[name]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return data, s.mime, nil
}

const testPlaceholder = "data:image/png;base64,UExBQ0VIT0xERVI="

func TestInlineOnePassthrough(t *testing.T) {
	in := &Inliner{Placeholder: testPlaceholder}

	tests := []struct {
		name string
		ref  string
	}{
		{"data uri", "data:image/png;base64,AAAA"},
		{"http url", "http://cdn.example.com/logo.png"},
		{"https url", "https://cdn.example.com/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.InlineOne(context.Background(), tt.ref); got != tt.ref {
				t.Errorf("InlineOne(%q) = %q, want passthrough", tt.ref, got)
			}
		})
	}
}

func TestInlineOneReadsStore(t *testing.T) {
	store := &fakeStore{
		assets: map[string][]byte{"logos/site.png": []byte("png-bytes")},
		mime:   "image/png",
	}
	in := &Inliner{Store: store, Placeholder: testPlaceholder}

	got := in.InlineOne(context.Background(), "/logos/site.png")

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	if got != want {
		t.Errorf("InlineOne() = %q, want %q", got, want)
	}
	if len(store.opened) != 1 || store.opened[0] != "logos/site.png" {
		t.Errorf("store opened %v, want [logos/site.png]", store.opened)
	}
}

func TestInlineOneFallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		in   *Inliner
		ref  string
	}{
		{"empty ref", &Inliner{Store: &fakeStore{}, Placeholder: testPlaceholder}, ""},
		{"missing asset", &Inliner{Store: &fakeStore{}, Placeholder: testPlaceholder}, "missing.png"},
		{"store error", &Inliner{Store: &fakeStore{err: errors.New("io")}, Placeholder: testPlaceholder}, "x.png"},
		{"empty asset", &Inliner{Store: &fakeStore{assets: map[string][]byte{"x.png": {}}}, Placeholder: testPlaceholder}, "x.png"},
		{"nil store", &Inliner{Placeholder: testPlaceholder}, "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.InlineOne(context.Background(), tt.ref); got != testPlaceholder {
				t.Errorf("InlineOne(%q) = %q, want placeholder", tt.ref, got)
			}
		})
	}
}

func TestInlineOneCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{assets: map[string][]byte{"x.png": []byte("data")}}
	in := &Inliner{Store: store, Placeholder: testPlaceholder}

	if got := in.InlineOne(ctx, "x.png"); got != testPlaceholder {
		t.Errorf("InlineOne() = %q, want placeholder after cancellation", got)
	}
	if len(store.opened) != 0 {
		t.Error("store should not be touched after cancellation")
	}
}

func TestInlinePreservesOrder(t *testing.T) {
	store := &fakeStore{
		assets: map[string][]byte{
			"a.png": []byte("aaa"),
			"b.png": []byte("bbb"),
		},
		mime: "image/png",
	}
	in := &Inliner{Store: store, Placeholder: testPlaceholder}

	got := in.Inline(context.Background(), []string{"a.png", "missing.png", "b.png"})

	if len(got) != 3 {
		t.Fatalf("Inline() returned %d results, want 3", len(got))
	}
	if !strings.HasSuffix(got[0], base64.StdEncoding.EncodeToString([]byte("aaa"))) {
		t.Errorf("got[0] = %q, want a.png contents", got[0])
	}
	if got[1] != testPlaceholder {
		t.Errorf("got[1] = %q, want placeholder", got[1])
	}
	if !strings.HasSuffix(got[2], base64.StdEncoding.EncodeToString([]byte("bbb"))) {
		t.Errorf("got[2] = %q, want b.png contents", got[2])
	}
}

func TestInlineEmptyInput(t *testing.T) {
	in := &Inliner{Placeholder: testPlaceholder}
	if got := in.Inline(context.Background(), nil); len(got) != 0 {
		t.Errorf("Inline(nil) = %v, want empty", got)
	}
}

func TestEncodeDataURISniffsMIME(t *testing.T) {
	// PNG magic bytes; DetectContentType should identify them without a
	// declared MIME type.
	png := []byte("\x89PNG\r\n\x1a\n00000000")
	got := EncodeDataURI(png, "")
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("EncodeDataURI() = %q, want image/png prefix", got)
	}
}
