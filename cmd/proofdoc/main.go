// Command proofdoc renders betting-proof context files to PDF from the
// command line.
package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	proofdoc "github.com/wlproof/proofdoc"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, files, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
	if flags.version {
		fmt.Println(Version)
		return
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
	// env, in which case Go runtime defaults apply.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	opts, err := rendererOptions(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	poolSize := proofdoc.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := proofdoc.NewRendererPool(poolSize, opts...)

	if err := run(flags, files, pool); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
