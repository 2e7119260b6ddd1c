package main

import (
	"time"

	flag "github.com/spf13/pflag"

	proofdoc "github.com/wlproof/proofdoc"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	outDir         string
	assetDir       string
	timeoutSeconds int
	workers        int
	verbose        bool
	version        bool
}

// parseFlags parses args into flags and positional context files.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("proofdoc", flag.ContinueOnError)
	fs.StringVarP(&flags.outDir, "out", "o", "", "output directory (default: next to each context file)")
	fs.StringVar(&flags.assetDir, "assets", "", "upload asset directory for relative image paths")
	fs.IntVar(&flags.timeoutSeconds, "timeout", 60, "content-load timeout in seconds")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "concurrent renders (0 = auto)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}

// rendererOptions maps flags to renderer options.
func rendererOptions(flags *cliFlags) ([]proofdoc.Option, error) {
	opts := []proofdoc.Option{}
	if flags.timeoutSeconds > 0 {
		opts = append(opts, proofdoc.WithTimeout(time.Duration(flags.timeoutSeconds)*time.Second))
	}
	if flags.assetDir != "" {
		store, err := proofdoc.NewFileStore(flags.assetDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, proofdoc.WithAssetStore(store))
	}
	return opts, nil
}
