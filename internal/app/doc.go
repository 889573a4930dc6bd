// Package app provides the orchestration layer for the Kennel application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// players API client, and the UI to create the complete Kennel TUI. It
// serves as the composition root where all dependencies are initialized
// and connected.
//
// # Startup Sequence
//
//  1. Load configuration (file, environment, then flag overrides)
//  2. Load cosmetic preferences (theme); failures degrade to defaults
//  3. Point zerolog at the configured log file (stderr belongs to the TUI)
//  4. Initialize the HTTP client for the players API
//  5. Create the shared state.Store
//  6. Bootstrap: fetch the roster once so the first frame has data
//  7. Start the TUI and block until the user exits or context cancels
//
// # Components
//
//   - app.go: The Run function, flag override layering, and log setup
//   - bootstrap.go: The initial roster fetch that seeds the store
//
// # Refresh Model
//
// There is no background poller goroutine. Every fetch after bootstrap
// flows through the UI's command loop, which keeps all state transitions
// in one place: the UI issues a fetch command, the result arrives as a
// message, and the message handler writes the store. An optional timer
// (poll_seconds) re-issues the roster fetch on a fixed cadence through
// the same path.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid or unreadable
//   - API client initialization failure (bad URL)
//
// Recoverable conditions (logged, app continues):
//   - Bootstrap fetch failure: the store resets to empty and the UI
//     starts anyway, showing the failure in the header
//   - Log file unavailable: diagnostics go to a discard sink
//   - Preferences unreadable: defaults apply
//
// A dead network is a normal condition for a client like this; only a
// misconfiguration prevents startup.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		fmt.Fprintf(os.Stderr, "kennel: %v\n", err)
//	}
package app
