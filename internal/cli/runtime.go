package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/orbitr/internal/config"
	"github.com/roach88/orbitr/internal/store"
)

// newFormatter builds the output formatter for cmd.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, ErrCodeConfig+": failed to load config", err)
	}
	if opts.DataPath != "" {
		cfg.Storage.Path = opts.DataPath
	}
	return cfg, nil
}

// newLogger returns a text logger on w. Verbose forces debug level.
func newLogger(opts *RootOptions, cfg *config.Config, w io.Writer) *slog.Logger {
	level := cfg.Log.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openStore opens the record file named by cfg.
func openStore(cfg *config.Config, logger *slog.Logger) (*store.Store, error) {
	st, err := store.Open(cfg.Storage.Path, store.Options{
		OnCorrupt: store.CorruptPolicy(cfg.Storage.OnCorrupt),
		Logger:    logger,
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}
	return st, nil
}

// setup performs the config, logger and store steps shared by record commands.
func setup(opts *RootOptions, cmd *cobra.Command) (*config.Config, *slog.Logger, *store.Store, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(opts, cfg, cmd.ErrOrStderr())
	st, err := openStore(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("store opened", "path", st.Path())
	return cfg, logger, st, nil
}
