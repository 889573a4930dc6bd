package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/config"
	"github.com/pupbowl/kennel/internal/prefs"
	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
	"github.com/pupbowl/kennel/internal/ui"
)

// Options configure the Kennel application. Non-zero values override the
// corresponding config file and environment settings.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kennel/prefs.toml
	APIURL     string
	PollEvery  int // seconds; zero keeps the configured value
	LogFile    string
}

// Run boots the Kennel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	closeLogs := setupLogging(cfg.LogFile)
	defer closeLogs()

	client, err := pupbowl.NewClient(cfg.APIURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	// Populate the store before the UI starts so the first frame already
	// shows the roster (or its failure state).
	bootstrap(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		API:       client,
		Store:     store,
		Config:    &cfg,
		PollEvery: cfg.PollInterval(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// setupLogging points zerolog at the configured log file. The terminal is
// owned by the TUI, so diagnostics never go to stderr. Logging failures
// degrade to a discard sink; the app runs fine without diagnostics.
func setupLogging(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	return func() { _ = file.Close() }
}
