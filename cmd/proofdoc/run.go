package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	proofdoc "github.com/wlproof/proofdoc"
	"github.com/wlproof/proofdoc/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no context files given")
	ErrReadContext  = errors.New("failed to read context file")
	ErrParseContext = errors.New("failed to parse context file")
	ErrWriteOutput  = errors.New("failed to write output")
)

// run renders every context file, bounded by the pool size.
// Failures are collected per file; one bad file does not stop the rest.
func run(flags *cliFlags, files []string, pool *proofdoc.RendererPool) error {
	if len(files) == 0 {
		return ErrNoInput
	}

	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			if err := renderFile(ctx, pool, file, flags); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", file, err))
				mu.Unlock()
			}
		}(file)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// renderFile reads one context file, renders it, and writes the PDF.
func renderFile(ctx context.Context, pool *proofdoc.RendererPool, path string, flags *cliFlags) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadContext, err)
	}

	var cf contextFile
	if err := yamlutil.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("%w: %v", ErrParseContext, err)
	}

	renderer, err := pool.Acquire()
	if err != nil {
		return err
	}
	defer pool.Release(renderer)

	result, err := renderer.Render(ctx, cf.toRenderContext())
	if err != nil {
		return err
	}

	out := outputPath(path, flags.outDir)
	if err := os.WriteFile(out, result.PDF, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "%s -> %s (%d bytes)\n", path, out, len(result.PDF))
	}
	return nil
}

// outputPath derives the PDF path from a context file path, optionally
// redirected into outDir.
func outputPath(contextPath, outDir string) string {
	base := filepath.Base(contextPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base += ".pdf"

	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(contextPath), base)
}
