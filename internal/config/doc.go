// Package config handles loading and layering Kennel configuration.
//
// # Overview
//
// This package reads Kennel's TOML configuration and overlays KENNEL_*
// environment variables on top. The surface is deliberately small: the
// cohort API URL, the per-request timeout, the optional auto-refresh
// interval, and the diagnostics log file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. Compiled-in defaults
//  2. The TOML file (explicit path, or ~/.config/kennel/config.toml)
//  3. KENNEL_* environment variables, which win over the file
//
// A missing config file is NOT an error; defaults plus environment apply.
// Later layers only override fields they actually set, so an empty string
// in the file falls through to the default.
//
// # Default Values
//
//   - Config file: ~/.config/kennel/config.toml
//   - API URL: the hosted Puppy Bowl cohort endpoint
//   - Request timeout: 5 seconds
//   - Auto-refresh: off (poll_seconds = 0)
//   - Log file: ~/.local/state/kennel/kennel.log
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://fsa-puppy-bowl.herokuapp.com/api/2302-acc-pt-web-pt-a"
//	request_timeout_seconds = 5
//	poll_seconds = 30
//	log_file = "~/.local/state/kennel/kennel.log"
//
// All fields are optional. Tilde expansion is performed automatically on
// the log file path.
//
// # Environment Variables
//
//   - KENNEL_API_URL
//   - KENNEL_REQUEST_TIMEOUT_SECONDS
//   - KENNEL_POLL_SECONDS
//   - KENNEL_LOG_FILE
//
// These are read with envconfig after the file, so they are the final
// word short of command-line flags (which the app layer applies on top).
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unparseable environment values (e.g. a non-numeric poll interval)
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	client, err := pupbowl.NewClient(cfg.APIURL, cfg.Timeout())
//
// # Design Philosophy
//
// Kennel should work immediately with no file on disk: the compiled-in
// cohort URL is a real endpoint. The config package is read-only and
// stateless; it loads once at startup and returns an immutable Config.
package config
