package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	flags, files, err := parseFlags([]string{
		"proofdoc", "-o", "out", "--assets", "uploads",
		"--timeout", "30", "-w", "2", "-v",
		"ctx1.yaml", "ctx2.yaml",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.outDir != "out" {
		t.Errorf("outDir = %q, want out", flags.outDir)
	}
	if flags.assetDir != "uploads" {
		t.Errorf("assetDir = %q, want uploads", flags.assetDir)
	}
	if flags.timeoutSeconds != 30 {
		t.Errorf("timeoutSeconds = %d, want 30", flags.timeoutSeconds)
	}
	if flags.workers != 2 {
		t.Errorf("workers = %d, want 2", flags.workers)
	}
	if !flags.verbose {
		t.Error("verbose = false, want true")
	}
	if len(files) != 2 || files[0] != "ctx1.yaml" || files[1] != "ctx2.yaml" {
		t.Errorf("files = %v", files)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, files, err := parseFlags([]string{"proofdoc", "ctx.yaml"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.timeoutSeconds != 60 {
		t.Errorf("timeoutSeconds = %d, want default 60", flags.timeoutSeconds)
	}
	if flags.workers != 0 {
		t.Errorf("workers = %d, want default 0", flags.workers)
	}
	if flags.outDir != "" || flags.assetDir != "" || flags.verbose || flags.version {
		t.Errorf("unexpected non-default flags: %+v", flags)
	}
	if len(files) != 1 {
		t.Errorf("files = %v", files)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, _, err := parseFlags([]string{"proofdoc", "--bogus"}); err == nil {
		t.Error("parseFlags() should fail on unknown flag")
	}
}

func TestRendererOptionsInvalidAssetDir(t *testing.T) {
	flags := &cliFlags{assetDir: "/does/not/exist", timeoutSeconds: 60}
	if _, err := rendererOptions(flags); err == nil {
		t.Error("rendererOptions() should fail for missing asset dir")
	}
}

func TestRendererOptionsNoAssets(t *testing.T) {
	flags := &cliFlags{timeoutSeconds: 60}
	opts, err := rendererOptions(flags)
	if err != nil {
		t.Fatalf("rendererOptions() error = %v", err)
	}
	if len(opts) != 1 {
		t.Errorf("got %d options, want timeout only", len(opts))
	}
}
