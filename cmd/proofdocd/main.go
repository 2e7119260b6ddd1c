// Command proofdocd serves the render pipeline over HTTP: it accepts
// render contexts or pre-composed documents and responds with PDF
// attachments.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	proofdoc "github.com/wlproof/proofdoc"
	"github.com/wlproof/proofdoc/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	fs := flag.NewFlagSet("proofdocd", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	listen := fs.String("listen", "", "listen address (overrides config)")
	assetDir := fs.String("assets", "", "upload asset directory (overrides config)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *showVersion {
		fmt.Println(Version)
		return
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
	// env, in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *listen != "" {
		cfg.Server.Addr = *listen
	}
	if *assetDir != "" {
		cfg.Assets.Dir = *assetDir
	}

	logger := newLogger(cfg.Log)

	opts := []proofdoc.Option{proofdoc.WithTimeout(cfg.Timeout())}
	if cfg.Assets.Dir != "" {
		store, err := proofdoc.NewFileStore(cfg.Assets.Dir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.Assets.Dir).Msg("opening asset store")
		}
		opts = append(opts, proofdoc.WithAssetStore(store))
	}

	renderer, err := proofdoc.NewRenderer(opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("initializing renderer")
	}

	srv := newServer(renderer, logger)
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info().Str("addr", cfg.Server.Addr).Str("version", Version).Msg("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}
}

// newLogger builds the daemon logger from config. Unknown level names
// fall back to info.
func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
