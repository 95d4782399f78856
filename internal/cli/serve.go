package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/orbitr/internal/api"
	"github.com/roach88/orbitr/internal/catalog"
	"github.com/roach88/orbitr/internal/store"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Listen      string
	FrontendDir string

	// Ready, if set, is called with the bound address once the listener is open.
	Ready func(addr string)
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}
	return newServeCommand(opts)
}

func newServeCommand(opts *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the RSO catalog HTTP API.

The record file is created if it does not exist. When storage.seed is
enabled, an empty record file is filled from the built-in catalog before
the listener opens.

Example:
  orbitr serve
  orbitr serve --listen 127.0.0.1:8080 --data /var/lib/orbitr/rso.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.FrontendDir, "frontend", "", "directory served under /app/ (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.FrontendDir != "" {
		cfg.Server.FrontendDir = opts.FrontendDir
	}

	logger := newLogger(opts.RootOptions, cfg, cmd.ErrOrStderr())

	logger.Info("opening store", "path", cfg.Storage.Path, "on_corrupt", cfg.Storage.OnCorrupt)
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Storage.Seed {
		if err := seedStore(st, logger); err != nil {
			return WrapExitError(ExitCommandError, "failed to seed store", err)
		}
	}

	srv := &http.Server{
		Handler: api.New(st, api.Options{
			FrontendDir: cfg.Server.FrontendDir,
			Logger:      logger,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", cfg.Server.Listen)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to listen", err)
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	addr := ln.Addr().String()
	logger.Info("server listening", "addr", addr, "frontend_dir", cfg.Server.FrontendDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
	if opts.Ready != nil {
		opts.Ready(addr)
	}

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "server error", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitFailure, "shutdown error", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

// seedStore fills an empty store from the built-in catalog.
func seedStore(st *store.Store, logger *slog.Logger) error {
	seeded, err := st.Seed(catalog.Load())
	if err != nil {
		return err
	}
	if !seeded {
		logger.Debug("store already populated, seed skipped", "path", st.Path())
	}
	return nil
}
