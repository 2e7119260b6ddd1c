package proofdoc

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildPDFOptions(t *testing.T) {
	opts := buildPDFOptions()

	if opts.PaperWidth == nil || *opts.PaperWidth != paperWidthInches {
		t.Errorf("PaperWidth = %v, want %v", opts.PaperWidth, paperWidthInches)
	}
	if opts.PaperHeight == nil || *opts.PaperHeight != paperHeightInches {
		t.Errorf("PaperHeight = %v, want %v", opts.PaperHeight, paperHeightInches)
	}

	margins := map[string]*float64{
		"top":    opts.MarginTop,
		"bottom": opts.MarginBottom,
		"left":   opts.MarginLeft,
		"right":  opts.MarginRight,
	}
	for side, m := range margins {
		if m == nil || *m != 0 {
			t.Errorf("margin %s = %v, want 0", side, m)
		}
	}

	if !opts.PrintBackground {
		t.Error("PrintBackground should be enabled")
	}
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be enabled")
	}
}

func TestNewRodPrinter(t *testing.T) {
	p := newRodPrinter(30 * time.Second)
	if p.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", p.timeout)
	}
}

func TestPrintCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newRodPrinter(time.Second)
	if _, err := p.Print(ctx, "<html></html>"); !errors.Is(err, context.Canceled) {
		t.Errorf("Print() error = %v, want context.Canceled", err)
	}
}

func TestPrintExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	p := newRodPrinter(time.Second)
	if _, err := p.Print(ctx, "<html></html>"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Print() error = %v, want context.DeadlineExceeded", err)
	}
}
